package models

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"math"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

// CaseStudy is a rendered project write-up in one language.
type CaseStudy struct {
	Title       string
	Slug        string
	Lang        string
	Summary     string
	Role        string
	Year        int
	Tags        []string
	Content     template.HTML
	ReadingTime int
}

// HighlightStyle is the chroma style the case study CSS is generated from.
const HighlightStyle = "github"

var markdown = goldmark.New(
	goldmark.WithExtensions(
		meta.Meta,
		highlighting.NewHighlighting(
			highlighting.WithStyle(HighlightStyle),
			highlighting.WithFormatOptions(
				html.WithClasses(true), // Use CSS classes instead of inline styles
				html.WithLineNumbers(false),
			),
		),
	),
)

// sanitizer keeps chroma's class attributes on code blocks.
var sanitizer = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").OnElements("pre", "code", "span")
	return p
}()

// LoadCaseStudies reads every markdown file under dir/lang in fsys.
func LoadCaseStudies(fsys fs.FS, dir, lang string) ([]CaseStudy, error) {
	var studies []CaseStudy

	root := path.Join(dir, lang)
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.HasSuffix(p, ".md") {
			return nil
		}

		study, err := parseCaseStudy(fsys, p)
		if err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}
		study.Lang = lang

		studies = append(studies, study)
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Newest first, then by title
	sort.SliceStable(studies, func(i, j int) bool {
		if studies[i].Year != studies[j].Year {
			return studies[i].Year > studies[j].Year
		}
		return studies[i].Title < studies[j].Title
	})

	return studies, nil
}

func parseCaseStudy(fsys fs.FS, p string) (CaseStudy, error) {
	content, err := fs.ReadFile(fsys, p)
	if err != nil {
		return CaseStudy{}, err
	}

	var buf bytes.Buffer
	context := parser.NewContext()

	if err := markdown.Convert(content, &buf, parser.WithContext(context)); err != nil {
		return CaseStudy{}, err
	}

	metaData := meta.Get(context)

	// Generate slug from filename
	slug := strings.TrimSuffix(path.Base(p), ".md")

	// Calculate reading time (average 200 words per minute)
	wordCount := len(strings.Fields(string(content)))
	readingTime := int(math.Ceil(float64(wordCount) / 200.0))

	return CaseStudy{
		Title:       getStringMeta(metaData, "title", slug),
		Slug:        slug,
		Summary:     getStringMeta(metaData, "summary", ""),
		Role:        getStringMeta(metaData, "role", ""),
		Year:        getIntMeta(metaData, "year"),
		Tags:        getSliceMeta(metaData, "tags"),
		Content:     template.HTML(sanitizer.SanitizeBytes(buf.Bytes())),
		ReadingTime: readingTime,
	}, nil
}

func getStringMeta(data map[string]interface{}, key, defaultVal string) string {
	if val, ok := data[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return defaultVal
}

func getIntMeta(data map[string]interface{}, key string) int {
	switch v := data[key].(type) {
	case int:
		return v
	case string:
		n, _ := strconv.Atoi(v)
		return n
	}
	return 0
}

func getSliceMeta(data map[string]interface{}, key string) []string {
	if val, ok := data[key]; ok {
		if slice, ok := val.([]interface{}); ok {
			result := make([]string, 0, len(slice))
			for _, item := range slice {
				if str, ok := item.(string); ok {
					result = append(result, str)
				}
			}
			return result
		}
	}
	return []string{}
}
