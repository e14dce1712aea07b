package openapi

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// PluginPrefix marks protected tags. They survive convergence regardless
	// of frequency and keep their case.
	PluginPrefix = "Plugin "

	// PrimaryPluginPrefix is the plugin family listed first among plugin tags.
	PrimaryPluginPrefix = "Plugin lol"

	// AssetServingTag groups endpoints served under the "{plugin}" placeholder.
	AssetServingTag = "Plugin Asset Serving"

	// OtherTag collects operations left without a shared tag.
	OtherTag = "other"

	// DefaultPasses is the number of convergence passes BuildTags runs.
	DefaultPasses = 2
)

// TaggedOperation is the input and output of Converge: the operation's
// template and its current tags.
type TaggedOperation struct {
	Template string
	Tags     []string
}

// InitialTag derives an operation's tag from its URL template.
func InitialTag(template string) string {
	switch {
	case strings.HasPrefix(template, "/lol-"):
		return PluginPrefix + firstSegment(template)
	case strings.HasPrefix(template, "/{plugin}"):
		return AssetServingTag
	default:
		return firstSegment(template)
	}
}

func firstSegment(template string) string {
	parts := strings.SplitN(template, "/", 3)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// IsProtected reports whether tag belongs to a plugin family.
func IsProtected(tag string) bool {
	return strings.HasPrefix(tag, PluginPrefix)
}

// Converge collapses rare tags. Each pass counts tag frequency over the
// pass's input, drops non-protected tags seen only once, lower-cases the
// survivors and strips "$". An operation left without tags falls back to
// its first path segment on the first pass only, then to OtherTag.
// ops is not modified.
func Converge(ops []TaggedOperation, passes int) []TaggedOperation {
	out := make([]TaggedOperation, len(ops))
	for i, op := range ops {
		out[i] = TaggedOperation{Template: op.Template, Tags: slices.Clone(op.Tags)}
	}
	for pass := 0; pass < passes; pass++ {
		out = convergePass(out, pass == 0)
	}
	return out
}

func convergePass(ops []TaggedOperation, pathFallback bool) []TaggedOperation {
	counts := make(map[string]int)
	for _, op := range ops {
		for _, tag := range op.Tags {
			counts[tag]++
		}
	}

	lower := cases.Lower(language.Und)
	out := make([]TaggedOperation, len(ops))
	for i, op := range ops {
		var kept []string
		for _, tag := range op.Tags {
			if counts[tag] > 1 || IsProtected(tag) {
				kept = append(kept, tag)
			}
		}
		if len(kept) == 0 && pathFallback {
			if seg := firstSegment(op.Template); seg != "" {
				kept = []string{seg}
			}
		}
		if len(kept) == 0 {
			kept = []string{OtherTag}
		}

		tags := make([]string, 0, len(kept))
		for _, tag := range kept {
			if !IsProtected(tag) {
				tag = lower.String(tag)
			}
			tag = strings.ReplaceAll(tag, "$", "")
			if !slices.Contains(tags, tag) {
				tags = append(tags, tag)
			}
		}
		out[i] = TaggedOperation{Template: op.Template, Tags: tags}
	}
	return out
}

func tagRank(tag string) int {
	switch {
	case tag == OtherTag:
		return 3
	case strings.HasPrefix(tag, PrimaryPluginPrefix):
		return 1
	case IsProtected(tag):
		return 2
	default:
		return 0
	}
}

// SortTags returns the distinct tags ordered for the document's tag list:
// plain tags, then the primary plugin family, then other plugin tags, with
// OtherTag last. Ties break by byte order.
func SortTags(tags []string) []string {
	var out []string
	for _, tag := range tags {
		if !slices.Contains(out, tag) {
			out = append(out, tag)
		}
	}
	slices.SortStableFunc(out, func(a, b string) int {
		if ra, rb := tagRank(a), tagRank(b); ra != rb {
			return ra - rb
		}
		return strings.Compare(a, b)
	})
	return out
}

// BuildTags assigns each operation of doc its initial tag, converges the
// tags over DefaultPasses passes and stores the ordered tag list on doc.
func BuildTags(doc *Document) []Tag {
	var (
		ops    []*Operation
		tagged []TaggedOperation
	)
	for template, item := range doc.Paths.All() {
		for _, mo := range item.Operations() {
			ops = append(ops, mo.Operation)
			tagged = append(tagged, TaggedOperation{
				Template: template,
				Tags:     []string{InitialTag(template)},
			})
		}
	}

	converged := Converge(tagged, DefaultPasses)
	var all []string
	for i, op := range ops {
		op.Tags = converged[i].Tags
		all = append(all, converged[i].Tags...)
	}

	sorted := SortTags(all)
	doc.Tags = make([]Tag, len(sorted))
	for i, name := range sorted {
		doc.Tags[i] = Tag{Name: name}
	}
	return doc.Tags
}
