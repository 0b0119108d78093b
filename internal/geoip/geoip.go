// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package geoip resolves contact form submitter IPs to a country code
// using the MaxMind GeoLite2-Country database. Lookups degrade to an
// empty result when no database is configured.
package geoip

import (
	"fmt"
	"net"
	"os"
	"sync"

	"github.com/oschwald/maxminddb-golang"
)

var privateCIDRs []*net.IPNet

func init() {
	for _, block := range []string{
		"10.0.0.0/8",
		"172.16.0.0/12",
		"192.168.0.0/16",
		"fc00::/7",
		"fe80::/10",
	} {
		if _, cidr, err := net.ParseCIDR(block); err == nil {
			privateCIDRs = append(privateCIDRs, cidr)
		}
	}
}

// Lookup handles IP to country resolution.
type Lookup struct {
	db      *maxminddb.Reader
	enabled bool
	mu      sync.RWMutex
}

// geoRecord matches the GeoLite2-Country database structure.
type geoRecord struct {
	Country struct {
		ISOCode string `maxminddb:"iso_code"`
	} `maxminddb:"country"`
}

// NewLookup opens the database at dbPath. An empty path disables lookups
// without error so deployments without GeoIP still work.
func NewLookup(dbPath string) (*Lookup, error) {
	g := &Lookup{}
	if dbPath == "" {
		return g, nil
	}

	if _, err := os.Stat(dbPath); err != nil {
		return g, fmt.Errorf("GeoIP database unavailable: %w", err)
	}
	db, err := maxminddb.Open(dbPath)
	if err != nil {
		return g, fmt.Errorf("opening GeoIP database: %w", err)
	}

	g.db = db
	g.enabled = true
	return g, nil
}

// Country returns the 2-letter ISO country code for an IP address,
// "LOCAL" for private and loopback addresses, or "" when the address is
// invalid or lookups are disabled.
func (g *Lookup) Country(ip string) string {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return ""
	}
	if parsed.IsLoopback() || isPrivateIP(parsed) {
		return "LOCAL"
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.enabled || g.db == nil {
		return ""
	}

	var record geoRecord
	if err := g.db.Lookup(parsed, &record); err != nil {
		return ""
	}
	return record.Country.ISOCode
}

// IsEnabled reports whether a database is loaded.
func (g *Lookup) IsEnabled() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.enabled
}

// Close closes the underlying database.
func (g *Lookup) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.db != nil {
		err := g.db.Close()
		g.db = nil
		g.enabled = false
		return err
	}
	return nil
}

func isPrivateIP(ip net.IP) bool {
	for _, cidr := range privateCIDRs {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}
