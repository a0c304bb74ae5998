package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/cfgsplit/pkg/errors"
)

// encode writes v as a JSON, TOML or YAML document.
func encode(w io.Writer, v interface{}, f Format) error {
	var (
		data []byte
		err  error
	)

	switch f {
	case FormatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case FormatTOML:
		data, err = toml.Marshal(v)
	case FormatYAML:
		data, err = yaml.Marshal(v)
	default:
		return errors.Newf(errors.ErrInvalidInput, "format %s is not a document format", f)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrRender, "failed to encode %s", f)
	}

	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to write output")
	}
	return nil
}

// RenderConfig writes a configuration map. Terminal and text output use TOML.
func RenderConfig(w io.Writer, cfg map[string]interface{}, f Format) error {
	switch f = Resolve(f, w); f {
	case FormatJSON, FormatYAML, FormatTOML:
		return encode(w, cfg, f)
	default:
		if len(cfg) == 0 {
			_, err := fmt.Fprintln(w, "# empty configuration")
			return wrapWrite(err)
		}
		return encode(w, cfg, FormatTOML)
	}
}

func wrapWrite(err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, errors.ErrRender, "failed to write output")
}

// RenderValue writes the value found at key. Tables render like RenderConfig;
// document formats wrap scalars as a one-key document.
func RenderValue(w io.Writer, key string, value interface{}, f Format) error {
	if m, ok := value.(map[string]interface{}); ok {
		return RenderConfig(w, m, f)
	}
	switch f = Resolve(f, w); f {
	case FormatJSON, FormatTOML, FormatYAML:
		return encode(w, map[string]interface{}{key: value}, f)
	}
	_, err := fmt.Fprintln(w, value)
	return wrapWrite(err)
}
