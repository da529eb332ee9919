package main

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/termlife/golife/game"
)

func main() {
	app := cli.NewApp()
	app.Name = "life"
	app.Usage = "terminal rendering of Conway's game of life"
	app.ArgsUsage = "INIT_STATE"
	app.Description = "INIT_STATE is a file holding the coordinates of the initial live cells,\n" +
		"one \"(y, x)\" pair per line with y as the row and x as the column."
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "update-rate-ms, t",
			Value: 10,
			Usage: "speed of the simulation in milliseconds",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("simulation terminated")
	}
}

func run(c *cli.Context) error {
	updateRateMs := c.Int("update-rate-ms")
	if updateRateMs <= 0 {
		return errors.New("update rate must be a positive integer")
	}
	if c.NArg() != 1 {
		return errors.New("missing initial state configuration file")
	}

	result, err := game.Run(game.Config{
		UpdateRate:    time.Duration(updateRateMs) * time.Millisecond,
		InitStatePath: c.Args().First(),
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"generations": result.Generations,
		"population":  result.Population,
		"runtime":     result.Runtime.Round(time.Millisecond).String(),
	}).Info("simulation finished")
	return nil
}
