package render

import (
	"fmt"
	"html/template"
	"os"

	"github.com/Suphian/quran-art/internal/model"
)

const galleryTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Qur'an demonstrative visualizations</title>
<style>
body{font-family:sans-serif;padding:20px;}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(120px,1fr));gap:10px;}
.grid img{width:100%;height:auto;}
.grid figcaption{font-size:12px;text-align:center;}
</style>
</head>
<body>
<div class="grid">
{{- range .}}
<figure><img src="{{.Image}}" alt="Surah {{.Surah}}: {{.Name}}"><figcaption>{{.Surah}}. {{.Name}}</figcaption></figure>
{{- end}}
</div>
</body>
</html>
`

var galleryTmpl = template.Must(template.New("gallery").Parse(galleryTemplate))

// GalleryEntry is one image cell in the gallery grid
type GalleryEntry struct {
	Surah int
	Name  string
	Image string
}

// WriteGallery writes the static gallery document referencing the rendered
// raster files, ordered by surah number. Surahs without artwork get no entry.
func WriteGallery(path string, artworks []*model.SurahArtwork) (err error) {
	entries := make([]GalleryEntry, 0, len(artworks))
	for _, art := range artworks {
		entries = append(entries, GalleryEntry{
			Surah: art.Surah,
			Name:  model.SurahName(art.Surah),
			Image: fmt.Sprintf("png/%03d.png", art.Surah),
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create gallery: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close gallery: %w", closeErr)
		}
	}()

	if err = galleryTmpl.Execute(f, entries); err != nil {
		return fmt.Errorf("render gallery: %w", err)
	}
	return nil
}
