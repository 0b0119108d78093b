// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain constants and derived-field logic shared
// by the store and handler layers.
package model

// SFIA levels (L1-L7), Entry through Expert.
const (
	SFIALevelEntry        = "L1"
	SFIALevelFoundation   = "L2"
	SFIALevelPractitioner = "L3"
	SFIALevelSenior       = "L4"
	SFIALevelLead         = "L5"
	SFIALevelPrincipal    = "L6"
	SFIALevelExpert       = "L7"
)

// SFIALevels lists all valid SFIA levels in ascending order.
var SFIALevels = []string{
	SFIALevelEntry,
	SFIALevelFoundation,
	SFIALevelPractitioner,
	SFIALevelSenior,
	SFIALevelLead,
	SFIALevelPrincipal,
	SFIALevelExpert,
}

// IndustryLevels lists the industry-standard equivalents of the SFIA scale.
var IndustryLevels = []string{
	"entry",
	"foundation",
	"practitioner",
	"senior",
	"lead",
	"principal",
	"expert",
}

// Sectors lists the valid skill sector values.
var Sectors = []string{
	"ecommerce",
	"edtech",
	"banking",
	"devops",
	"govtech",
	"healthcare",
	"fintech",
	"other",
}

// Years-of-experience bounds for a skill.
const (
	MinYearsExperience = 0
	MaxYearsExperience = 50
)

// IsValidSFIALevel reports whether level is one of L1-L7.
func IsValidSFIALevel(level string) bool {
	return contains(SFIALevels, level)
}

// IsValidIndustryLevel reports whether level is a known industry level.
func IsValidIndustryLevel(level string) bool {
	return contains(IndustryLevels, level)
}

// IsValidSector reports whether sector is a known sector value.
func IsValidSector(sector string) bool {
	return contains(Sectors, sector)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
