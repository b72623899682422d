// Package geoip resolves client IPs to ISO country codes using a local
// MaxMind database. Lookups are best-effort; a nil Resolver is valid and
// resolves everything to the empty string.
package geoip

import (
	"net"

	"github.com/oschwald/maxminddb-golang"
	"github.com/pkg/errors"
)

// Resolver wraps an open MaxMind country database.
type Resolver struct {
	db *maxminddb.Reader
}

// Open opens the MaxMind database at path.
func Open(path string) (*Resolver, error) {
	db, err := maxminddb.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open geoip database")
	}
	return &Resolver{db: db}, nil
}

// Country returns the ISO country code for the passed IP string, or the
// empty string when the IP cannot be resolved.
func (r *Resolver) Country(ipStr string) string {
	if r == nil || r.db == nil {
		return ""
	}
	ip := net.ParseIP(ipStr)
	if ip == nil {
		return ""
	}
	var record struct {
		Country struct {
			ISOCode string `maxminddb:"iso_code"`
		} `maxminddb:"country"`
	}
	if err := r.db.Lookup(ip, &record); err != nil {
		return ""
	}
	return record.Country.ISOCode
}

// Close closes the underlying database.
func (r *Resolver) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}
