package ogcard

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// templateVersion is baked into every fingerprint so that layout changes to
// the card template bust caches even when the metadata itself is unchanged.
// Bump it whenever the rendered output changes for identical metadata.
const templateVersion = "v1"

// fieldSeparator joins fingerprint fields. The unit separator never occurs
// in titles or color tokens, so adjacent fields cannot collide by shifting
// characters across the boundary.
const fieldSeparator = "\x1f"

// Fingerprint derives a stable 8-hex-digit cache-buster from metadata.
// It is a 32-bit FNV-1a over the joined field list, so two field-wise equal
// records always agree and any field change almost certainly differs.
// Collisions are an accepted tradeoff: the fingerprint busts caches, it does
// not authenticate anything.
func Fingerprint(m Metadata) string {
	joined := strings.Join([]string{
		templateVersion,
		m.Title,
		m.Description,
		m.AccentColor,
		m.SecondaryAccentColor,
		m.TextColor,
		m.BackgroundColor,
		strconv.FormatBool(m.HideFooter),
	}, fieldSeparator)

	h := fnv.New32a()
	h.Write([]byte(joined))
	return fmt.Sprintf("%08x", h.Sum32())
}
