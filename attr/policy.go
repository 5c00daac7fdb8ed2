package attr

import (
	"regexp"
	"strings"
)

// True is the value stored for a boolean attribute which is switched on.
// Rendering emits boolean attributes carrying this value as a bare name.
const True = ""

// aliases redirects spellings of HTML attributes which collide with keywords
// in host languages. Internally the HTML-standard name is stored.
var aliases = map[string]string{
	"class_":      "class",
	"cls":         "class",
	"class_name":  "class",
	"className":   "class",
	"for_":        "for",
	"for_element": "for",
	"html_for":    "for",
	"htmlFor":     "for",
}

// svgCamelAttrs maps the lower-case form of SVG presentation attributes to
// the camelCase spelling required on the wire.
var svgCamelAttrs = map[string]string{
	"viewbox":             "viewBox",
	"basefrequency":       "baseFrequency",
	"calcmode":            "calcMode",
	"clippathunits":       "clipPathUnits",
	"diffuseconstant":     "diffuseConstant",
	"edgemode":            "edgeMode",
	"filterunits":         "filterUnits",
	"glyphref":            "glyphRef",
	"gradienttransform":   "gradientTransform",
	"gradientunits":       "gradientUnits",
	"kernelmatrix":        "kernelMatrix",
	"kernelunitlength":    "kernelUnitLength",
	"keypoints":           "keyPoints",
	"keysplines":          "keySplines",
	"keytimes":            "keyTimes",
	"lengthadjust":        "lengthAdjust",
	"limitingconeangle":   "limitingConeAngle",
	"markerheight":        "markerHeight",
	"markerunits":         "markerUnits",
	"markerwidth":         "markerWidth",
	"maskcontentunits":    "maskContentUnits",
	"maskunits":           "maskUnits",
	"numoctaves":          "numOctaves",
	"pathlength":          "pathLength",
	"patterncontentunits": "patternContentUnits",
	"patterntransform":    "patternTransform",
	"patternunits":        "patternUnits",
	"pointsatx":           "pointsAtX",
	"pointsaty":           "pointsAtY",
	"pointsatz":           "pointsAtZ",
	"preserveaspectratio": "preserveAspectRatio",
	"primitiveunits":      "primitiveUnits",
	"refx":                "refX",
	"refy":                "refY",
	"repeatcount":         "repeatCount",
	"repeatdur":           "repeatDur",
	"requiredextensions":  "requiredExtensions",
	"requiredfeatures":    "requiredFeatures",
	"specularconstant":    "specularConstant",
	"specularexponent":    "specularExponent",
	"spreadmethod":        "spreadMethod",
	"startoffset":         "startOffset",
	"stddeviation":        "stdDeviation",
	"stitchtiles":         "stitchTiles",
	"surfacescale":        "surfaceScale",
	"systemlanguage":      "systemLanguage",
	"tablevalues":         "tableValues",
	"targetx":             "targetX",
	"targety":             "targetY",
	"textlength":          "textLength",
	"xchannelselector":    "xChannelSelector",
	"ychannelselector":    "yChannelSelector",
	"zoomandpan":          "zoomAndPan",
}

// booleanAttrs are the HTML5 attributes whose presence alone carries meaning.
var booleanAttrs = map[string]struct{}{
	"allowfullscreen": {}, "async": {}, "autofocus": {}, "autoplay": {},
	"checked": {}, "controls": {}, "default": {}, "defer": {},
	"disabled": {}, "formnovalidate": {}, "hidden": {}, "inert": {},
	"ismap": {}, "itemscope": {}, "loop": {}, "multiple": {},
	"muted": {}, "nomodule": {}, "novalidate": {}, "open": {},
	"playsinline": {}, "readonly": {}, "required": {}, "reversed": {},
	"selected": {},
}

var (
	validTag = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*$`)
	validKey = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*(:[A-Za-z][A-Za-z0-9-]*)?$`)
)

// Canonical maps an external attribute key to the key stored in a tree.
// Rules are applied in order:
//
//     1. alias table (class_ → class, for_ → for, …)
//     2. data-* keys: remaining underscores become hyphens
//     3. SVG presentation attributes: snake, lower or camel case → camelCase
//     4. otherwise underscores become hyphens
//
// Canonical(Canonical(k)) == Canonical(k) holds for every k.
func Canonical(key string) string {
	if k, ok := aliases[key]; ok {
		return k
	}
	if strings.HasPrefix(key, "data_") || strings.HasPrefix(key, "data-") {
		return "data-" + strings.ReplaceAll(key[5:], "_", "-")
	}
	if k, ok := svgCamelAttrs[strings.ToLower(strings.ReplaceAll(key, "_", ""))]; ok {
		return k
	}
	return strings.ReplaceAll(key, "_", "-")
}

// IsSVGCamel is a predicate to check if key is one of the camelCase SVG
// attributes. key has to be canonical.
func IsSVGCamel(key string) bool {
	k, ok := svgCamelAttrs[strings.ToLower(key)]
	return ok && k == key
}

// IsBoolean checks if key names an HTML5 boolean attribute.
func IsBoolean(key string) bool {
	_, ok := booleanAttrs[key]
	return ok
}

// RendersBare checks if an attribute should be written as a bare name,
// i.e. it is a boolean attribute switched on.
func RendersBare(key, value string) bool {
	return IsBoolean(key) && (value == True || strings.EqualFold(value, key))
}

// ValidKey checks a canonical key for characters which could break out
// of the attribute syntax. A single namespace prefix (xlink:href) is allowed.
func ValidKey(key string) bool {
	return validKey.MatchString(key)
}

// ValidTag checks a tag name against [A-Za-z][A-Za-z0-9-]*.
func ValidTag(tag string) bool {
	return validTag.MatchString(tag)
}
