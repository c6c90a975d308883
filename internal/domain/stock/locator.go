package stock

import (
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collators are not safe for concurrent use; guard the shared instance.
var (
	collMu sync.Mutex
	coll   = collate.New(language.Und, collate.Loose)
)

// splitLocator splits a storage location on the first dash into a numeric
// prefix and a string remainder. ok is false when the prefix is missing or
// not a number; such locations sort after every parsable one.
func splitLocator(loc string) (prefix int, rest string, ok bool) {
	head, tail, _ := strings.Cut(loc, "-")
	n, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0, tail, false
	}
	return n, tail, true
}

// CompareLocation is the canonical ordering for inventory listings: numeric
// prefix ascending first ("1-01" before "2-05"), then a locale-aware
// comparison of the remainder. Locations without a parsable numeric prefix
// sort last. Returns a negative value when a sorts before b, positive when
// after, zero when equal.
func CompareLocation(a, b string) int {
	aNum, aRest, aOK := splitLocator(a)
	bNum, bRest, bOK := splitLocator(b)

	if aOK != bOK {
		if aOK {
			return -1
		}
		return 1
	}
	if aOK && aNum != bNum {
		if aNum < bNum {
			return -1
		}
		return 1
	}

	collMu.Lock()
	defer collMu.Unlock()
	return coll.CompareString(aRest, bRest)
}
