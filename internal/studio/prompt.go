package studio

import "strings"

type categoryEntry struct {
	Task     string
	Surfaces []string
	Preserve []string
	Lighting []string
}

// Unknown categories fall back to the body entry, which is the most generic
// "modify a body panel" instruction set.
const fallbackCategory = "body"

var categoryEntries = map[string]categoryEntry{
	"wheels": {
		Task: "Replace every visible wheel and rim of the car with the catalog wheel design.",
		Surfaces: []string{
			"All visible wheels and rims, including partially occluded ones.",
			"Keep the overall wheel diameter and tire sidewall proportions plausible for this car.",
			"Tires stay mounted and seated naturally; no floating or misaligned rims.",
		},
		Preserve: []string{
			"Body color and paint finish",
			"Windows and glass",
			"Headlights and taillights",
			"Roof and roofline",
			"Background and scene",
			"Camera angle and framing",
		},
		Lighting: []string{
			"Match the wheel's metal finish to the scene's light direction and temperature.",
			"Cast contact shadows under each tire consistent with the original photo.",
			"Reflections on spokes follow the surrounding environment, not the catalog backdrop.",
		},
	},
	"roof": {
		Task: "Install the catalog roof accessory onto the car's roof, seated on the roofline or rails.",
		Surfaces: []string{
			"The roofline only; mounting points align with the visible roof rails if present.",
			"Scale the accessory realistically to the car's width and length.",
		},
		Preserve: []string{
			"Body color and paint finish",
			"Wheels and rims",
			"Windows and glass",
			"Headlights and taillights",
			"Background and scene",
			"Camera angle and framing",
		},
		Lighting: []string{
			"The accessory picks up the same key light as the roof panel beneath it.",
			"Add a soft contact shadow where the accessory meets the roof.",
		},
	},
	"body": {
		Task: "Apply the catalog body styling accent (front lip, side skirts, or spoiler) to the matching body panel.",
		Surfaces: []string{
			"Only the body panel the accent belongs to; it follows the existing body line.",
			"Color-matched accents adopt the car's exact paint color and finish.",
		},
		Preserve: []string{
			"Body color on untouched panels",
			"Wheels and rims",
			"Windows and glass",
			"Headlights and taillights",
			"Roof and roofline",
			"Background and scene",
			"Camera angle and framing",
		},
		Lighting: []string{
			"The accent shares the panel's specular highlights and shading.",
			"Shadow falloff along the accent matches the original photo's light direction.",
		},
	},
}

// The five rules below are load-bearing for output quality and are present in
// every composed prompt regardless of category.
var universalRules = []string{
	"The customer's car photo is authoritative: keep the exact same car, camera angle, and background.",
	"The catalog part photo supplies appearance only (shape, finish, color); never copy its composition, backdrop, or framing.",
	"Return exactly one image.",
	"Do not add any text, watermarks, labels, or logos.",
	"Never produce side-by-side, collage, or before/after layouts.",
}

var negativeList = []string{
	"different car than the photo",
	"changed body color",
	"changed camera angle",
	"changed or replaced background",
	"catalog studio backdrop leaking into the scene",
	"floating or detached parts",
	"warped body panels",
	"text overlays",
	"watermark",
	"split frame",
	"before/after comparison",
	"multiple images in one frame",
	"low resolution",
	"blurry",
}

// ComposePrompt builds the full installation instruction for one part. Pure
// and deterministic over its inputs.
func ComposePrompt(partName, category, description string) string {
	key := strings.ToLower(strings.TrimSpace(category))
	entry, ok := categoryEntries[key]
	if !ok {
		entry = categoryEntries[fallbackCategory]
	}

	var b strings.Builder
	b.Grow(2048)

	b.WriteString("TASK: Photorealistic car-part installation preview.\n\n")

	b.WriteString("PHOTO ROLES:\n")
	b.WriteString("- PHOTO 1 is MY CAR. It defines the car, its angle, and its background; do not change any of them.\n")
	b.WriteString("- PHOTO 2 is the catalog part to install. Use it only as an appearance reference.\n\n")

	b.WriteString("PART:\n")
	b.WriteString("- Name: " + strings.TrimSpace(partName) + "\n")
	if desc := strings.TrimSpace(description); desc != "" {
		b.WriteString("- Description: " + desc + "\n")
	}
	b.WriteString("\n")

	b.WriteString("INSTALLATION:\n")
	b.WriteString("- " + entry.Task + "\n")
	writeSection(&b, "Target surfaces", entry.Surfaces)
	b.WriteString("\n")

	writeSection(&b, "PRESERVE UNCHANGED (except the part being replaced)", entry.Preserve)
	b.WriteString("\n")

	writeSection(&b, "LIGHTING AND SHADOWS", entry.Lighting)
	b.WriteString("\n")

	b.WriteString("HARD RULES:\n")
	for _, rule := range universalRules {
		b.WriteString("- " + rule + "\n")
	}
	b.WriteString("\n")

	b.WriteString("AVOID:\n")
	for _, line := range negativeList {
		b.WriteString("- " + line + "\n")
	}
	b.WriteString("\n")

	b.WriteString("OUTPUT:\n")
	b.WriteString("- One photorealistic image of the car with the part installed. Nothing else.\n")

	return strings.TrimSpace(b.String())
}

func writeSection(b *strings.Builder, title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	b.WriteString(title + ":\n")
	for _, line := range lines {
		b.WriteString("- " + line + "\n")
	}
}
