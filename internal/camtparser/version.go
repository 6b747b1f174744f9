package camtparser

import (
	"strings"

	"fjacquet/camt-extract/internal/xmltree"
)

// VersionUnknown is reported when the root element matches none of the
// known sub-version tokens. Extraction proceeds unchanged in that case.
const VersionUnknown = "unknown"

// knownVersions is a forward-compatible allowlist used only for
// informational tagging; extraction logic never branches on it.
var knownVersions = []string{
	"camt.053.001.02",
	"camt.053.001.03",
	"camt.053.001.04",
	"camt.053.001.08",
	"camt.053.001.12",
	"camt.052.001.02",
	"camt.052.001.03",
	"camt.052.001.04",
	"camt.052.001.08",
	"camt.052.001.12",
}

// detectVersion scans the root element's qualified tag for a known
// sub-version token.
func detectVersion(root *xmltree.Node) string {
	qualified := root.Space + ":" + root.Tag
	for _, v := range knownVersions {
		if strings.Contains(qualified, v) {
			return v
		}
	}
	return VersionUnknown
}
