package version

import (
	"strconv"
	"strings"
)

// VERSION holds the server's version
const VERSION = "1.4.0"

// Version segments
var (
	MAJOR int
	MINOR int
	FIX   int
)

func init() {
	v := strings.Split(VERSION, ".")
	MAJOR, _ = strconv.Atoi(v[0])
	MINOR, _ = strconv.Atoi(v[1])
	FIX, _ = strconv.Atoi(v[2])
}
