package main

import (
	"fmt"
	"image"
	"io"
	"net/http"
	"os"

	"github.com/codegangsta/cli"
	"github.com/cs253086/img2ascii"
	"github.com/disintegration/imaging"
)

func main() {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "img2ascii"
	app.Usage = "A command-line tool for rendering images as ASCII character art."
	app.UsageText = "1) img2ascii [options] [file|url]\n" +
		/*      */ "   2) img2ascii [options] < [file]"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "width,w",
			Usage: "`WIDTH` sets the number of character columns.",
			Value: 80,
		},
		cli.StringFlag{
			Name:  "detail,d",
			Usage: "`DETAIL` selects the pipeline variant: smooth or detailed.",
			Value: "smooth",
		},
		cli.BoolFlag{
			Name:  "invert,i",
			Usage: "Reverses the brightness-to-glyph mapping.",
		},
		cli.StringFlag{
			Name:  "ramp,r",
			Usage: "`RAMP` replaces the character ramp, darkest glyph first.",
		},
		cli.Float64Flag{
			Name:  "gamma,g",
			Usage: "`GAMMA` = 1.0 gives the original image. GAMMA less than 1.0 darkens the image and GAMMA greater than 1.0 lightens it.",
			Value: 1.0,
		},
		cli.Float64Flag{
			Name:  "brightness,b",
			Usage: "`BRIGHTNESS` = 0 gives the original image. BRIGHTNESS = -100 gives solid black image. BRIGHTNESS = 100 gives solid white image.",
			Value: 0.0,
		},
		cli.Float64Flag{
			Name:  "sharpen,s",
			Usage: "`SHARPEN` = 0 gives the original image. SHARPEN greater than 0 sharpens the image before conversion.",
			Value: 0.0,
		},
		cli.BoolFlag{
			Name:  "flip-h",
			Usage: "Flips the image horizontally.",
		},
		cli.BoolFlag{
			Name:  "flip-v",
			Usage: "Flips the image vertically.",
		},
	}
	app.Action = func(c *cli.Context) {
		var reader io.Reader

		// Try to parse the args, if there are any, as a file or url
		if input := c.Args().First(); input != "" {
			// Is it a file?
			if file, err := os.Open(input); err == nil {
				reader = file
			} else {
				// Is it a url?
				resp, err := http.Get(input)
				if err != nil {
					exit(err.Error(), 1)
				}
				defer resp.Body.Close()
				reader = resp.Body
			}
		} else {
			reader = os.Stdin
		}

		img, _, err := image.Decode(reader)
		if err != nil {
			exit(err.Error(), 1)
		}

		img = preprocessImage(c, img)

		if err := img2ascii.Encode(os.Stdout, img, options(c)...); err != nil {
			exit(err.Error(), 1)
		}
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func options(c *cli.Context) []img2ascii.Option {
	opts := []img2ascii.Option{
		img2ascii.WithWidth(c.Int("width")),
	}
	switch c.String("detail") {
	case "smooth":
		opts = append(opts, img2ascii.WithDetail(img2ascii.DetailSmooth))
	case "detailed":
		opts = append(opts, img2ascii.WithDetail(img2ascii.DetailDetailed))
	default:
		exit("detail option must be smooth or detailed", 1)
	}
	if c.Bool("invert") {
		opts = append(opts, img2ascii.WithInvert())
	}
	if ramp := c.String("ramp"); ramp != "" {
		if len([]rune(ramp)) < 2 {
			exit("ramp option must hold at least two glyphs", 1)
		}
		opts = append(opts, img2ascii.WithRamp(ramp))
	}
	return opts
}

// preprocessImage applies the optional image adjustments ahead of the
// conversion pipeline.
func preprocessImage(c *cli.Context, img image.Image) image.Image {
	if c.IsSet("gamma") {
		img = imaging.AdjustGamma(img, c.Float64("gamma"))
	}
	if c.IsSet("brightness") {
		img = imaging.AdjustBrightness(img, c.Float64("brightness"))
	}
	if c.IsSet("sharpen") {
		img = imaging.Sharpen(img, c.Float64("sharpen"))
	}
	if c.Bool("flip-h") {
		img = imaging.FlipH(img)
	}
	if c.Bool("flip-v") {
		img = imaging.FlipV(img)
	}
	return img
}

func exit(msg string, code int) {
	fmt.Println(msg)
	os.Exit(code)
}
