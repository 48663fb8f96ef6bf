package toc

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type EntryType string

const (
	EntryFrontmatter EntryType = "frontmatter"
	EntryChapter     EntryType = "chapter"
	EntrySubChapter  EntryType = "subchapter"
)

// Entry is one row of an extracted table of contents. Content is the display
// label ("BAB 3 : Judul"); Page is a roman numeral for front matter and a
// decimal string otherwise.
type Entry struct {
	Type    EntryType
	Title   string
	Content string
	Page    string
}

var (
	frontmatterRe = regexp.MustCompile(`(?i)kata pengantar|daftar isi`)
	chapterRe     = regexp.MustCompile(`(?i)^bab\s+\d+.*`)
	subChapterRe  = regexp.MustCompile(`^\d+\.\d+.*`)
)

// mainStartMarker flips the main-content flag. A plain substring test on the
// lowercased page text, so "bab 1" anywhere on the page counts, including
// mid-sentence and as a prefix of "bab 10".
const mainStartMarker = "bab 1"

var romanPages = []string{"i", "ii", "iii", "iv", "v", "vi", "vii", "viii", "ix", "x"}

// romanPage returns the 1-based front-matter page label. Past the lookup
// table it degrades to the decimal string.
func romanPage(n int) string {
	if n >= 1 && n <= len(romanPages) {
		return romanPages[n-1]
	}
	return strconv.Itoa(n)
}

// ScanPages assembles TOC entries from per-page text, one string per page in
// reading order.
//
// Front-matter markers are collected from the whole document. Chapter and
// subchapter headings are only collected once a page has contained "Bab 1";
// from then on chapter pages are numbered by a running counter that advances
// once per page, starting at 1 on the page that contained the marker. Every
// heading is emitted at most once per scan, keyed by its matched text.
//
// Chapter labels number chapters by emission order, not by the digits in the
// heading. Source documents misnumber or reorder their own chapters often
// enough that the parsed number is not trusted.
func ScanPages(pages []string) []Entry {
	var entries []Entry
	seen := make(map[string]bool)

	started := false
	page := 0
	frontCount := 0
	chapterCount := 0

	for _, text := range pages {
		startedBefore := started
		if !started && strings.Contains(strings.ToLower(text), mainStartMarker) {
			started = true
			page = 1
		}

		lines := strings.Split(text, "\n")
		for i, line := range lines {
			if m := frontmatterRe.FindString(line); m != "" && !seen[m] {
				seen[m] = true
				frontCount++
				entries = append(entries, Entry{
					Type:    EntryFrontmatter,
					Title:   m,
					Content: m,
					Page:    romanPage(frontCount),
				})
			}

			if !started {
				continue
			}

			if m := chapterRe.FindString(strings.TrimSpace(line)); m != "" && !seen[m] {
				seen[m] = true
				// The heading line holds "Bab N"; the title is the line below.
				title := ""
				if i+1 < len(lines) {
					title = strings.TrimSpace(lines[i+1])
				}
				chapterCount++
				entries = append(entries, Entry{
					Type:    EntryChapter,
					Title:   title,
					Content: fmt.Sprintf("BAB %d : %s", chapterCount, title),
					Page:    strconv.Itoa(page),
				})
			}

			if m := subChapterRe.FindString(strings.TrimSpace(line)); m != "" && !seen[m] {
				seen[m] = true
				entries = append(entries, Entry{
					Type:    EntrySubChapter,
					Title:   m,
					Content: m,
					Page:    strconv.Itoa(page),
				})
			}
		}

		// The page counter only ticks for pages that began inside main
		// content; the marker page itself does not tick.
		if startedBefore {
			page++
		}
	}

	return entries
}
