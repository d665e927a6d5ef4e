// Package wgsl generates the WGSL side of the primitive schema: the
// kind constants and the compact-layout dispatch functions the GPU
// evaluator links against.
package wgsl

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"honnef.co/go/ydraw/schema"
)

var (
	camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
	digitBoundary = regexp.MustCompile(`([a-zA-Z])(\d+[A-Z])`)
	placeholder   = regexp.MustCompile(`\{(\w+)\}`)
)

// ConstName converts a kind name to its WGSL constant, e.g. Sphere3D to
// SDF_SPHERE_3D.
func ConstName(kind string) string {
	s := camelBoundary.ReplaceAllString(kind, "${1}_${2}")
	s = digitBoundary.ReplaceAllString(s, "${1}_${2}")
	return "SDF_" + strings.ToUpper(s)
}

// substitute expands {field} placeholders in an eval body to loads from
// the primitive's compact layout. Unknown placeholders are left alone.
func substitute(eval string, kind *schema.Kind) string {
	return placeholder.ReplaceAllStringFunc(eval, func(m string) string {
		name := m[1 : len(m)-1]
		off, ok := kind.Offset(name)
		if !ok {
			return m
		}
		for _, f := range kind.Fields {
			if f.Name == name && f.Value == schema.U32 {
				return fmt.Sprintf("bitcast<u32>(cardStorage[primOffset + %du])", off)
			}
		}
		return fmt.Sprintf("cardStorage[primOffset + %du]", off)
	})
}

// Generate writes the generated WGSL module.
func Generate(w io.Writer) error {
	var b strings.Builder
	b.WriteString("// Code generated from the primitive schema. DO NOT EDIT.\n\n")

	kinds := schema.Kinds()
	for _, kind := range kinds {
		fmt.Fprintf(&b, "const %s: u32 = %du;\n", ConstName(kind.Name), kind.ID)
	}
	b.WriteString("\n")

	genEval(&b, kinds, schema.SDF2D, "evalSDF", "vec2<f32>")
	genEval(&b, kinds, schema.SDF3D, "evalSDF3D", "vec3<f32>")
	genColors(&b, kinds)
	genStrokeWidth(&b, kinds)

	_, err := io.WriteString(w, b.String())
	return err
}

func genEval(b *strings.Builder, kinds []*schema.Kind, cat schema.Category, name, ptype string) {
	fmt.Fprintf(b, "fn %s(primOffset: u32, p: %s) -> f32 {\n", name, ptype)
	b.WriteString("    let primType = bitcast<u32>(cardStorage[primOffset + 0u]);\n\n")
	b.WriteString("    switch (primType) {\n")
	for _, kind := range kinds {
		if kind.Category != cat {
			continue
		}
		eval := strings.TrimSpace(kind.Eval)
		if eval == "" {
			continue
		}
		fmt.Fprintf(b, "        case %s: {\n", ConstName(kind.Name))
		for _, line := range strings.Split(substitute(eval, kind), "\n") {
			fmt.Fprintf(b, "            %s\n", line)
		}
		b.WriteString("        }\n")
	}
	b.WriteString("        default: {\n")
	b.WriteString("            return 1e10;\n")
	b.WriteString("        }\n")
	b.WriteString("    }\n")
	b.WriteString("}\n\n")
}

func genColors(b *strings.Builder, kinds []*schema.Kind) {
	b.WriteString("fn primColors(primOffset: u32) -> vec4<u32> {\n")
	b.WriteString("    let primType = bitcast<u32>(cardStorage[primOffset + 0u]);\n")
	b.WriteString("    switch (primType) {\n")
	for _, kind := range kinds {
		fill, okFill := kind.Offset("fillColor")
		stroke, okStroke := kind.Offset("strokeColor")
		layer, okLayer := kind.Offset("layer")
		if !okFill || !okStroke || !okLayer {
			continue
		}
		fmt.Fprintf(b, "        case %s: {\n", ConstName(kind.Name))
		b.WriteString("            return vec4<u32>(\n")
		fmt.Fprintf(b, "                bitcast<u32>(cardStorage[primOffset + %du]),\n", fill)
		fmt.Fprintf(b, "                bitcast<u32>(cardStorage[primOffset + %du]),\n", stroke)
		fmt.Fprintf(b, "                bitcast<u32>(cardStorage[primOffset + %du]),\n", layer)
		b.WriteString("                0u);\n")
		b.WriteString("        }\n")
	}
	b.WriteString("        default: { return vec4<u32>(0u); }\n")
	b.WriteString("    }\n")
	b.WriteString("}\n\n")
}

func genStrokeWidth(b *strings.Builder, kinds []*schema.Kind) {
	b.WriteString("fn primStrokeWidth(primOffset: u32) -> f32 {\n")
	b.WriteString("    let primType = bitcast<u32>(cardStorage[primOffset + 0u]);\n")
	b.WriteString("    switch (primType) {\n")
	for _, kind := range kinds {
		off, ok := kind.Offset("strokeWidth")
		if !ok {
			continue
		}
		fmt.Fprintf(b, "        case %s: { return cardStorage[primOffset + %du]; }\n", ConstName(kind.Name), off)
	}
	b.WriteString("        default: { return 0.0; }\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")
}
