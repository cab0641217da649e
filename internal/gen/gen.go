package gen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"sigs.k8s.io/yaml"

	"github.com/griffnb/giantbomb-openapi/internal/console"
	"github.com/griffnb/giantbomb-openapi/internal/loader"
	"github.com/griffnb/giantbomb-openapi/internal/openapi"
	"github.com/griffnb/giantbomb-openapi/internal/orchestrator"
	"github.com/griffnb/giantbomb-openapi/internal/parser/base"
)

// Version of the generator.
const Version = "v1.0.0"

const (
	// DefaultSource is the live documentation page.
	DefaultSource = base.DocumentationURL

	// DefaultOutputName is the base file name of the generated documents.
	DefaultOutputName = "openapi"
)

// ErrUnresolvedReference is returned when the document points at a component
// that was never registered.
var ErrUnresolvedReference = errors.New("unresolved reference")

type genTypeWriter func(*Config, *openapi.Document) error

// Gen presents a generate tool for the Giant Bomb OpenAPI document.
type Gen struct {
	json          func(data interface{}) ([]byte, error)
	jsonToYAML    func(data []byte) ([]byte, error)
	outputTypeMap map[string]genTypeWriter
	debug         Debugger
}

// Debugger is the interface that wraps the basic Printf method.
type Debugger interface {
	Printf(format string, v ...interface{})
}

// New creates a new Gen.
func New() *Gen {
	gen := Gen{
		json:       openapi.MarshalCanonical,
		jsonToYAML: yaml.JSONToYAML,
		debug:      console.Logger,
	}

	gen.outputTypeMap = map[string]genTypeWriter{
		"json": gen.writeJSON,
		"yaml": gen.writeYAML,
		"yml":  gen.writeYAML,
	}

	return &gen
}

// Config presents Gen configurations.
type Config struct {
	Debugger Debugger

	// Source is the documentation page, a URL or a local HTML file
	Source string

	// OutputDir represents the output directory for all the generated files
	OutputDir string

	// OutputName is the file name without extension, "openapi" by default
	OutputName string

	// OutputTypes define types of files which should be generated
	OutputTypes []string

	// UserAgent is sent when fetching a remote source
	UserAgent string

	// Timeout bounds the fetch of a remote source; zero means no timeout
	Timeout time.Duration

	// SkipVerify skips the reference check before writing
	SkipVerify bool
}

// Build generates the document with a background context.
func (g *Gen) Build(config *Config) error {
	return g.BuildContext(context.Background(), config)
}

// BuildContext loads the documentation page, builds and verifies the
// document, then writes one file per output type.
func (g *Gen) BuildContext(ctx context.Context, config *Config) error {
	if config.Debugger != nil {
		g.debug = config.Debugger
	}
	applyDefaults(config)

	console.Logger.Debug("Loading documentation from %s", config.Source)

	loaderService := loader.NewService(
		loader.WithUserAgent(config.UserAgent),
		loader.WithTimeout(config.Timeout),
		loader.WithDebugger(g.debug),
	)
	page, err := loaderService.Load(ctx, config.Source)
	if err != nil {
		return err
	}

	orc := orchestrator.New(&orchestrator.Config{
		DocumentationURL: documentationURL(config.Source),
		Debug:            g.debug,
	})
	doc, err := orc.Build(page)
	if err != nil {
		return err
	}

	if !config.SkipVerify {
		if err := g.verify(ctx, doc); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(config.OutputDir, os.ModePerm); err != nil {
		return err
	}

	for _, outputType := range config.OutputTypes {
		outputType = strings.ToLower(strings.TrimSpace(outputType))
		if typeWriter, ok := g.outputTypeMap[outputType]; ok {
			if err := typeWriter(config, doc); err != nil {
				return err
			}
		} else {
			console.Logger.Warn("output type '%s' not supported", outputType)
		}
	}

	return nil
}

func applyDefaults(config *Config) {
	if config.Source == "" {
		config.Source = DefaultSource
	}
	if config.OutputDir == "" {
		config.OutputDir = "."
	}
	if config.OutputName == "" {
		config.OutputName = DefaultOutputName
	}
	if len(config.OutputTypes) == 0 {
		config.OutputTypes = []string{"json"}
	}
}

// documentationURL links local sources back to the live page.
func documentationURL(source string) string {
	if loader.IsRemote(source) {
		return source
	}
	return DefaultSource
}

// verify checks that every reference resolves, first against the components
// directly and then by loading the encoded document with kin-openapi.
func (g *Gen) verify(ctx context.Context, doc *openapi.Document) error {
	if unresolved := orchestrator.UnresolvedReferences(doc); len(unresolved) > 0 {
		return fmt.Errorf("%w: %s", ErrUnresolvedReference, strings.Join(unresolved, ", "))
	}

	b, err := g.json(doc)
	if err != nil {
		return err
	}

	openapiLoader := &openapi3.Loader{Context: ctx}
	if _, err := openapiLoader.LoadFromData(b); err != nil {
		return fmt.Errorf("%w: %v", ErrUnresolvedReference, err)
	}

	g.debug.Printf("Verified references of %d paths", len(doc.Paths))

	return nil
}

func (g *Gen) writeJSON(config *Config, doc *openapi.Document) error {
	jsonFileName := filepath.Join(config.OutputDir, config.OutputName+".json")

	b, err := g.json(doc)
	if err != nil {
		return err
	}

	if err := g.writeFile(b, jsonFileName); err != nil {
		return err
	}

	console.Logger.Debug("create %s", jsonFileName)

	return nil
}

func (g *Gen) writeYAML(config *Config, doc *openapi.Document) error {
	yamlFileName := filepath.Join(config.OutputDir, config.OutputName+".yaml")

	b, err := g.json(doc)
	if err != nil {
		return err
	}

	y, err := g.jsonToYAML(b)
	if err != nil {
		return fmt.Errorf("cannot covert json to yaml error: %s", err)
	}

	if err := g.writeFile(y, yamlFileName); err != nil {
		return err
	}

	console.Logger.Debug("create %s", yamlFileName)

	return nil
}

func (g *Gen) writeFile(b []byte, file string) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}

	defer f.Close()

	_, err = f.Write(b)

	return err
}
