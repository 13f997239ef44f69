package images

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

var knownExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true, ".avif": true, ".bmp": true,
}

// PageKey is the object key of a chapter page: prefix/manga/chapter/page-NNN.ext.
// During a crawl page is the position in the source listing, so a chapter with
// failed pages keeps gaps in its keys while stored page numbers are 1..k.
func PageKey(prefix, mangaSlug, chapterSlug string, page int, ext string) string {
	return path.Join(prefix, mangaSlug, chapterSlug, PageFile(page, ext))
}

// LocalPageKey is the object key of a page already saved under localPath. The
// file name is kept so the object mirrors the local copy.
func LocalPageKey(prefix, mangaSlug, chapterSlug, localPath string) string {
	return path.Join(prefix, mangaSlug, chapterSlug, filepath.Base(localPath))
}

// CoverKey is the object key of a manga cover.
func CoverKey(prefix, mangaSlug, ext string) string {
	return path.Join(prefix, mangaSlug, "cover"+ext)
}

// PageFile is the file name of a page, shared by object keys and local paths.
func PageFile(page int, ext string) string {
	return fmt.Sprintf("page-%03d%s", page, ext)
}

// LocalPath mirrors an object key under dir.
func LocalPath(dir, key string) string {
	return filepath.Join(dir, filepath.FromSlash(key))
}

// Ext returns the lowercase image extension of rawURL, or ".jpg" when the URL
// carries none that is recognised.
func Ext(rawURL string) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}

	ext := strings.ToLower(path.Ext(p))
	if ext == ".jpeg" {
		return ".jpg"
	}
	if knownExts[ext] {
		return ext
	}

	return ".jpg"
}
