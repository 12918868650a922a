package gen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"tuplecast-generator/category"
	"tuplecast-generator/internal/plan"
	"tuplecast-generator/internal/synth"
)

// RenderedFile is one rendered output unit ready for writing.
type RenderedFile struct {
	Filename string
	Content  []byte
}

// RenderConfig holds configuration for unit rendering.
type RenderConfig struct {
	// GenerateComments enables the per-definition explanatory comment line.
	GenerateComments bool
}

// DefaultRenderConfig returns the default rendering configuration.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{GenerateComments: true}
}

// Render renders every unit into one file each, in unit order.
func Render(units []plan.OutputUnit, config RenderConfig) ([]RenderedFile, error) {
	files := make([]RenderedFile, 0, len(units))

	for _, unit := range units {
		file, err := RenderUnit(unit, config)
		if err != nil {
			return nil, fmt.Errorf("rendering unit %s: %w", unit.Key, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// RenderUnit renders a single output unit.
func RenderUnit(unit plan.OutputUnit, config RenderConfig) (*RenderedFile, error) {
	data := &unitData{
		UnitName:         unit.Key.String(),
		GenerateComments: config.GenerateComments,
	}

	for _, m := range unit.Markers {
		data.Markers = append(data.Markers, markerData{
			Name:       m.Name,
			Constraint: constraintName(m.Constraint),
		})
	}

	for _, def := range unit.Definitions {
		data.Definitions = append(data.Definitions, buildDefData(def))
	}

	var buf bytes.Buffer
	if err := unitTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing unit template: %w", err)
	}

	return &RenderedFile{
		Filename: unit.Key.String() + ".convdefs.txt",
		Content:  buf.Bytes(),
	}, nil
}

// unitData holds all data needed for the unit template.
type unitData struct {
	UnitName         string
	GenerateComments bool
	Markers          []markerData
	Definitions      []defData
}

type markerData struct {
	Name       string
	Constraint string
}

// defData is one converter definition with every signature fragment
// precomputed as a string.
type defData struct {
	Name       string
	Key        string
	Comment    string
	TypeParams string
	Source     string
	Disamb     string
	Returns    string
	BodyLines  []string
}

func buildDefData(def *synth.ConverterDefinition) defData {
	data := defData{
		Name:       def.Name,
		Key:        def.Key(),
		TypeParams: renderTypeParams(def.TypeParams),
		Source:     def.Params[0].Name + " " + def.Params[0].Type,
		Disamb:     renderParams(def.DisambParams),
		Returns:    renderReturns(def.Result),
		BodyLines:  renderBody(def),
	}

	data.Comment = fmt.Sprintf("%s for %s over %s", def.Name, def.SourceType, def.Classification)

	return data
}

func renderTypeParams(params []synth.TypeParam) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Name + ": " + constraintName(p.Constraint)
	}

	return strings.Join(parts, ", ")
}

func renderParams(params []synth.Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		part := p.Name + " " + p.Type
		if p.Default != "" {
			part += " = " + p.Default
		}

		parts[i] = part
	}

	return strings.Join(parts, ", ")
}

func renderReturns(slots []synth.ResultSlot) string {
	parts := make([]string, len(slots))

	for i, s := range slots {
		part := fmt.Sprintf("%s[%s]", s.Wrap, s.TypeParam)
		if s.Name != "" {
			part = s.Name + " " + part
		}

		parts[i] = part
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

func renderBody(def *synth.ConverterDefinition) []string {
	lines := make([]string, len(def.Cases))

	for i, c := range def.Cases {
		value := fmt.Sprintf("source.get(%d)", c.Index)
		empty := "null"

		if c.Wrap == synth.WrapOption {
			value = "some(" + value + ")"
			empty = "none"
		}

		lines[i] = fmt.Sprintf("slot %d = %s when source.index == %d, else %s",
			c.Index, value, c.Index, empty)
	}

	return lines
}

func constraintName(cat category.Category) string {
	// "CategoryReference" -> "reference"
	return strings.ToLower(strings.TrimPrefix(cat.String(), "Category"))
}

var unitTemplate = template.Must(template.New("unit").Parse(`// Code generated by tuplecast-generator. DO NOT EDIT.

unit {{.UnitName}}

{{range .Markers}}marker {{.Name}}[T: {{.Constraint}}] // instantiable only under its constraint, never inspected at runtime
{{end}}
{{range .Definitions}}{{if $.GenerateComments}}// {{.Comment}}
{{end}}converter {{.Name}} [{{.Key}}]
	type-params: {{.TypeParams}}
	source: {{.Source}}
{{if .Disamb}}	disambiguation: {{.Disamb}}
{{end}}	returns: {{.Returns}}
	body:
{{range .BodyLines}}		{{.}}
{{end}}
{{end}}`))
