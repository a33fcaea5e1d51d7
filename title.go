package nb2blog

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleFromFilename derives a post title from a notebook file stem:
// underscores become spaces, then each word is title-cased
// ("intro_to_rnns" → "Intro To Rnns"). A letter right after a digit starts
// a new word ("forward_diffusion_2d" → "Forward Diffusion 2D").
func TitleFromFilename(stem string) string {
	title := []rune(cases.Title(language.English).String(strings.ReplaceAll(stem, "_", " ")))
	for i := 1; i < len(title); i++ {
		if unicode.IsDigit(title[i-1]) {
			title[i] = unicode.ToUpper(title[i])
		}
	}
	return string(title)
}
