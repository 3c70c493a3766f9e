// Package canonical prepares a raw content source for serving: duplicate
// titles are collapsed and every surviving record gets a stable,
// content-derived identifier. It is an offline pass run by the admin CLI,
// never part of the request path.
package canonical

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Canonicalize dedupes records by normalized title (first occurrence wins,
// input order preserved) and assigns identifiers where absent. Records with
// an empty trimmed title are dropped: title is mandatory. The result is
// stable under repeated application.
func Canonicalize(records []map[string]any) []map[string]any {
	seenTitles := make(map[string]bool, len(records))
	usedIDs := make(map[string]bool, len(records))
	out := make([]map[string]any, 0, len(records))

	for _, rec := range records {
		title, _ := rec["title"].(string)
		if strings.TrimSpace(title) == "" {
			continue
		}

		key := normalizeTitle(title)
		if seenTitles[key] {
			continue
		}

		id, _ := rec["id"].(string)
		if strings.TrimSpace(id) == "" {
			id = stableID(rec, usedIDs)
			rec["id"] = id
		}
		usedIDs[id] = true
		seenTitles[key] = true
		out = append(out, rec)
	}
	return out
}

// normalizeTitle is the dedupe key: case-insensitive, surrounding and
// internal whitespace collapsed.
func normalizeTitle(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}

// stableID hashes the record's canonical serialized form, excluding any
// identifier field. Map keys marshal in sorted order, so the digest is
// deterministic for identical content. A collision with an identifier
// already used in this run is resolved by appending a fixed marker to the
// hashed bytes and rehashing until the digest is unique.
func stableID(rec map[string]any, used map[string]bool) string {
	base := make(map[string]any, len(rec))
	for k, v := range rec {
		if k != "id" {
			base[k] = v
		}
	}

	b, err := json.Marshal(base)
	if err != nil {
		b = []byte(fmt.Sprintf("%v", base))
	}

	sum := blake2b.Sum256(b)
	id := hex.EncodeToString(sum[:])
	for used[id] {
		b = append(b, 'x')
		sum = blake2b.Sum256(b)
		id = hex.EncodeToString(sum[:])
	}
	return id
}
