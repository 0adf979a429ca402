package media

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
)

// SignedUpload carries everything a browser needs for a direct upload to
// the media host.
type SignedUpload struct {
	Timestamp int64  `json:"timestamp"`
	Folder    string `json:"folder"`
	Signature string `json:"signature"`
	APIKey    string `json:"api_key"`
	CloudName string `json:"cloud_name"`
}

// SignUpload signs the direct-upload parameters. The host expects a SHA-1
// over the signed params serialized as "k=v" pairs, sorted by key, joined
// with "&", with the API secret appended.
func (c *Client) SignUpload(timestamp int64, folder string) *SignedUpload {
	params := map[string]string{
		"timestamp": strconv.FormatInt(timestamp, 10),
		"folder":    folder,
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + c.apiSecret))

	return &SignedUpload{
		Timestamp: timestamp,
		Folder:    folder,
		Signature: hex.EncodeToString(sum[:]),
		APIKey:    c.apiKey,
		CloudName: c.cloudName,
	}
}
