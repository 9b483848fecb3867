package thermcal_test

import (
	"fmt"
	"log"

	"github.com/gantrylab/thermcal"
	"github.com/gantrylab/thermcal/compensate"
	"github.com/gantrylab/thermcal/sample"
)

func ExampleCalibrate() {
	// Synthetic run: the frame warms from 25°C to 28°C while the measured
	// position drifts by exactly twice the unit-gain model prediction.
	cfg := compensate.Config{
		FrameLength:  0.5,
		ThermalCoeff: 25e-6,
		ScaleFactor:  1000,
	}

	frameTemps := []float64{25, 25, 26, 27, 28}
	steps := []int64{0, 0, -10, -20, -30}

	records := make([]sample.Record, len(frameTemps))
	for i := range records {
		pos := 20000 + steps[i]
		bed := 60.0
		records[i] = sample.Record{
			RawPosition: &pos,
			BedTemp:     &bed,
			FrameTemp:   &frameTemps[i],
			BedTarget:   &bed,
		}
	}

	series, err := sample.Ingest(records)
	if err != nil {
		log.Fatal(err)
	}

	est, err := thermcal.Calibrate(series, cfg, compensate.ReferenceWindow{Start: 0, End: 2})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("gantry factor: %.2f (R²=%.2f)\n", est.Slope, est.RSquared)
	// Output: gantry factor: 2.00 (R²=1.00)
}
