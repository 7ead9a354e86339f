package uikitscan

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
	"gitlab.com/tozd/go/errors"
)

// TemplateCompiler turns an SVG template into component render code.
type TemplateCompiler interface {
	Compile(id, source, filename string) (string, error)
}

// SVGOptions configures LoadSVG.
type SVGOptions struct {
	DefaultImport string           // import type when the id has no query (default "url")
	NoMinify      bool             // keep comments and whitespace
	CacheDir      string           // url imports are handled only for files in here
	Compiler      TemplateCompiler // required for component output
	Logger        zerolog.Logger
}

var svgIDPattern = regexp.MustCompile(`\.svg(\?(raw|url|component|skipsvgo))?$`)

// LoadSVG loads an SVG module id such as "icons/home.svg?component".
//
// handled is false when the id is not an SVG import, when it is a url import of a file
// outside the icon cache, or when the file cannot be read; the host then falls back to
// its default loader. raw imports export the file content as a string. Everything else
// is minified (unless skipsvgo or NoMinify) and compiled into a render function.
func LoadSVG(id string, opts SVGOptions) (code string, handled bool, err error) {
	if !svgIDPattern.MatchString(id) {
		return "", false, nil
	}

	path, query, _ := strings.Cut(id, "?")
	importType := query
	if importType == "" {
		importType = opts.DefaultImport
	}
	if importType == "" {
		importType = "url"
	}

	if importType == "url" && !inIconCache(path, opts.CacheDir) {
		return "", false, nil
	}

	// #nosec G304 - id comes from the host module graph
	data, err := os.ReadFile(path)
	if err != nil {
		opts.Logger.Warn().Err(err).Str("id", id).Msg("svg could not be loaded, falling back to default loader")
		return "", false, nil
	}
	svg := string(data)

	if importType == "raw" {
		var quoted bytes.Buffer
		enc := json.NewEncoder(&quoted)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(svg); err != nil {
			return "", true, errors.Errorf("encode %s: %w", path, err)
		}
		return "export default " + strings.TrimSuffix(quoted.String(), "\n"), true, nil
	}

	if !opts.NoMinify && query != "skipsvgo" {
		if svg, err = MinifySVG(svg); err != nil {
			return "", true, errors.Errorf("minify %s: %w", path, err)
		}
	}

	// Template compilers drop <style>; keep it as a dynamic component
	svg = strings.ReplaceAll(svg, "<style", `<component is="style"`)
	svg = strings.ReplaceAll(svg, "</style", "</component")

	if opts.Compiler == nil {
		return "", true, errors.Errorf("%w: %s", ErrNoTemplateCompiler, id)
	}
	render, err := opts.Compiler.Compile(id, svg, path)
	if err != nil {
		return "", true, errors.Errorf("compile %s: %w", path, err)
	}

	return render + "\nexport default { render: render }\n", true, nil
}

func inIconCache(path, cacheDir string) bool {
	if strings.Contains(path, ".generated") {
		return true
	}
	if cacheDir == "" {
		return false
	}
	rel, err := filepath.Rel(cacheDir, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// MinifySVG drops comments, the XML declaration, the doctype and whitespace-only
// text between elements. Attribute values and text content are kept as they are.
func MinifySVG(svg string) (string, error) {
	l := xml.NewLexer(parse.NewInputString(svg))

	var buf bytes.Buffer
	inPI := false
	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if err := l.Err(); err != nil && err != io.EOF {
				return "", err
			}
			return buf.String(), nil
		case xml.CommentToken, xml.DOCTYPEToken:
		case xml.StartTagPIToken:
			inPI = true
		case xml.StartTagClosePIToken:
			inPI = false
		case xml.AttributeToken:
			if inPI {
				continue
			}
			buf.WriteByte(' ')
			buf.Write(l.Text())
			if val := l.AttrVal(); val != nil {
				buf.WriteByte('=')
				buf.Write(val)
			}
		case xml.EndTagToken:
			buf.WriteString("</")
			buf.Write(l.Text())
			buf.WriteByte('>')
		case xml.TextToken:
			if len(bytes.TrimSpace(data)) > 0 {
				buf.Write(data)
			}
		default:
			buf.Write(data)
		}
	}
}
