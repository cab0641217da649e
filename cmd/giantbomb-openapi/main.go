package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/griffnb/giantbomb-openapi/internal/console"
	"github.com/griffnb/giantbomb-openapi/internal/gen"
	"github.com/griffnb/giantbomb-openapi/internal/loader"
)

const (
	sourceFlag      = "source"
	outputFlag      = "output"
	nameFlag        = "name"
	outputTypesFlag = "outputTypes"
	userAgentFlag   = "user-agent"
	timeoutFlag     = "timeout"
	debugFlag       = "debug"
	quietFlag       = "quiet"
	logFileFlag     = "log-file"
	skipVerifyFlag  = "skip-verify"
)

const envPrefix = "GIANTBOMB_OPENAPI_"

func envVar(flag string) []string {
	name := strings.ToUpper(strings.NewReplacer("-", "_").Replace(flag))
	return []string{envPrefix + name}
}

var generateFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    sourceFlag,
		Aliases: []string{"s"},
		Value:   gen.DefaultSource,
		Usage:   "Documentation page to convert, a URL or a local HTML file",
		EnvVars: envVar(sourceFlag),
	},
	&cli.StringFlag{
		Name:    outputFlag,
		Aliases: []string{"o"},
		Value:   ".",
		Usage:   "Output directory for the generated files",
		EnvVars: envVar(outputFlag),
	},
	&cli.StringFlag{
		Name:    nameFlag,
		Aliases: []string{"n"},
		Value:   gen.DefaultOutputName,
		Usage:   "File name of the generated files without extension",
		EnvVars: envVar(nameFlag),
	},
	&cli.StringFlag{
		Name:    outputTypesFlag,
		Aliases: []string{"ot"},
		Value:   "json",
		Usage:   "Output types of generated files like json,yaml",
		EnvVars: envVar("output_types"),
	},
	&cli.StringFlag{
		Name:    userAgentFlag,
		Value:   loader.DefaultUserAgent,
		Usage:   "User-Agent header sent when fetching the documentation page",
		EnvVars: envVar(userAgentFlag),
	},
	&cli.DurationFlag{
		Name:    timeoutFlag,
		Usage:   "Timeout for fetching the documentation page, 0 disables it",
		EnvVars: envVar(timeoutFlag),
	},
	&cli.BoolFlag{
		Name:    debugFlag,
		Usage:   "Enable debug mode, disabled by default",
		EnvVars: envVar(debugFlag),
	},
	&cli.BoolFlag{
		Name:    quietFlag,
		Aliases: []string{"q"},
		Usage:   "Make the logger quiet.",
		EnvVars: envVar(quietFlag),
	},
	&cli.StringFlag{
		Name:    logFileFlag,
		Usage:   "Also write JSON logs to this file, rotated by size",
		EnvVars: envVar(logFileFlag),
	},
	&cli.BoolFlag{
		Name:    skipVerifyFlag,
		Usage:   "Write the document without checking its references",
		EnvVars: envVar(skipVerifyFlag),
	},
}

func generateAction(ctx *cli.Context) error {
	console.Configure(console.Options{
		Quiet:   ctx.Bool(quietFlag),
		LogFile: ctx.String(logFileFlag),
	})

	if ctx.Bool(debugFlag) {
		console.Logger.DebugLevel = 1
	}

	var outputTypes []string
	for _, outputType := range strings.Split(ctx.String(outputTypesFlag), ",") {
		if outputType = strings.TrimSpace(outputType); outputType != "" {
			outputTypes = append(outputTypes, outputType)
		}
	}
	if len(outputTypes) == 0 {
		return fmt.Errorf("no output types specified")
	}

	return gen.New().BuildContext(ctx.Context, &gen.Config{
		Debugger:    console.Logger,
		Source:      ctx.String(sourceFlag),
		OutputDir:   ctx.String(outputFlag),
		OutputName:  ctx.String(nameFlag),
		OutputTypes: outputTypes,
		UserAgent:   ctx.String(userAgentFlag),
		Timeout:     ctx.Duration(timeoutFlag),
		SkipVerify:  ctx.Bool(skipVerifyFlag),
	})
}

func main() {
	app := cli.NewApp()
	app.Name = "giantbomb-openapi"
	app.Version = gen.Version
	app.Usage = "Convert the Giant Bomb API documentation into an OpenAPI 3.0.2 document."
	app.Flags = generateFlags
	app.Action = generateAction
	app.Commands = []*cli.Command{
		{
			Name:    "generate",
			Aliases: []string{"g"},
			Usage:   "Generate the OpenAPI document",
			Action:  generateAction,
			Flags:   generateFlags,
		},
	}

	err := app.Run(os.Args)
	_ = console.Logger.Close()
	if err != nil {
		log.Fatal(err)
	}
}
