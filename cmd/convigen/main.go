// Command convigen writes the width-class registration files of the cast
// package.
package main

import (
	"context"
	"fmt"
	"math/bits"
	"os"
	"os/signal"
	"strings"

	"github.com/jfrog/convi/internal/gen"
	"github.com/jfrog/convi/log"
	"github.com/jfrog/convi/widthclass"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "convigen",
		Usage: "generate the width-class registration files of the cast package",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "directory to write the generated files into",
				Value:   ".",
			},
			&cli.StringFlag{
				Name:  "package",
				Usage: "package name of the generated files",
				Value: gen.DefaultPackage,
			},
			&cli.StringSliceFlag{
				Name:        "class",
				Aliases:     []string{"c"},
				Usage:       "width class(es) to generate: base, 16, 32, 64 or 128",
				DefaultText: "all",
				Action:      validateClassFlags,
			},
			&cli.IntFlag{
				Name:  "jobs",
				Usage: "maximum number of files rendered concurrently",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log every written file",
			},
		},
		Action: generate,
	}
}

func validateClassFlags(_ *cli.Context, values []string) error {
	_, err := parseClasses(values)
	return err
}

func parseClasses(values []string) ([]widthclass.Class, error) {
	classes := make([]widthclass.Class, 0, len(values))
	for _, value := range values {
		class, err := widthclass.ParseClass(value)
		if err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}
	return classes, nil
}

// unsatisfiedClasses returns the classes whose build guard fails on targets
// with the given pointer width.
func unsatisfiedClasses(classes []widthclass.Class, pointerBits int) []widthclass.Class {
	widest := widthclass.ForPointerWidth(pointerBits)
	return lo.Filter(classes, func(c widthclass.Class, _ int) bool { return c > widest })
}

func generate(c *cli.Context) error {
	logger := log.GetLogger()
	if c.Bool("verbose") {
		logger.SetLogLevel(log.DEBUG)
	}

	classes, err := parseClasses(c.StringSlice("class"))
	if err != nil {
		return err
	}
	if len(classes) == 0 {
		classes = widthclass.Classes()
	}
	log.Debugf("generating %s into %s", strings.Join(lo.Map(classes, func(class widthclass.Class, _ int) string {
		return class.String()
	}), ", "), c.String("out"))
	for _, class := range unsatisfiedClasses(classes, bits.UintSize) {
		log.Warn(fmt.Sprintf("%s needs %d-bit pointers and fails its build guard on this %d-bit host", class, class.Bits(), bits.UintSize))
	}

	g := &gen.Generator{
		Dir:     c.String("out"),
		Package: c.String("package"),
		Limit:   c.Int("jobs"),
		Logger:  logger,
	}
	written, err := g.Run(c.Context, classes)
	if err != nil {
		return err
	}
	for _, path := range written {
		log.Output(path)
	}
	log.Infof("generated %d files", len(written))
	return nil
}
