package history

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// EncodeQuery packs a snapshot into URL query parameters: the record list as
// base64 JSON under "history", favorites as a comma-separated index list.
// This is the best-effort secondary encoding; the medium stays authoritative.
func EncodeQuery(snap *Snapshot) (url.Values, error) {
	data, err := json.Marshal(snap.History)
	if err != nil {
		return nil, fmt.Errorf("encode history: %w", err)
	}

	values := url.Values{}
	values.Set("history", base64.URLEncoding.EncodeToString(data))
	if len(snap.Favorites) > 0 {
		parts := make([]string, len(snap.Favorites))
		for i, fav := range snap.Favorites {
			parts[i] = strconv.Itoa(fav)
		}
		values.Set("favorites", strings.Join(parts, ","))
	}
	return values, nil
}

// DecodeQuery unpacks query parameters produced by EncodeQuery. Malformed
// input is an error; an absent history parameter decodes to an empty
// snapshot.
func DecodeQuery(values url.Values) (*Snapshot, error) {
	snap := &Snapshot{}

	encoded := values.Get("history")
	if encoded == "" {
		return snap, nil
	}
	data, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode history parameter: %w", err)
	}
	if err := json.Unmarshal(data, &snap.History); err != nil {
		return nil, fmt.Errorf("parse history parameter: %w", err)
	}

	if favs := values.Get("favorites"); favs != "" {
		for _, part := range strings.Split(favs, ",") {
			idx, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return nil, fmt.Errorf("parse favorites parameter: %w", err)
			}
			if idx >= 0 && idx < len(snap.History) {
				snap.Favorites = append(snap.Favorites, idx)
			}
		}
	}
	return snap, nil
}
