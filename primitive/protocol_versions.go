// Copyright 2024 The CQL Wire Driver Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package primitive

// AllDseProtocolVersions returns every DSE-private protocol version this package knows the constants for.
// No component of this driver negotiates a DSE version; this exists so codec tests can assert DSE frames
// are rejected rather than silently mishandled.
func AllDseProtocolVersions() []ProtocolVersion {
	return []ProtocolVersion{ProtocolVersionDse1, ProtocolVersionDse2}
}

// AllProtocolVersions returns the full OSS + DSE version set, so codec round-trip tests can exercise every
// version the wire format defines, not just the ProtocolVersion4 this driver negotiates in practice.
func AllProtocolVersions() []ProtocolVersion {
	versions := append([]ProtocolVersion{}, SupportedProtocolVersions()...)
	return append(versions, AllDseProtocolVersions()...)
}

// AllNonBetaProtocolVersions returns AllProtocolVersions minus any version flagged IsBeta. No version is
// currently flagged beta, so this is equivalent to AllProtocolVersions, but test matrices call it by name
// to stay correct if a beta version is ever added.
func AllNonBetaProtocolVersions() []ProtocolVersion {
	var versions []ProtocolVersion
	for _, v := range AllProtocolVersions() {
		if !v.IsBeta() {
			versions = append(versions, v)
		}
	}
	return versions
}

func AllProtocolVersionsLesserThan(v ProtocolVersion) []ProtocolVersion {
	var versions []ProtocolVersion
	for _, candidate := range AllProtocolVersions() {
		if candidate < v {
			versions = append(versions, candidate)
		}
	}
	return versions
}

func AllProtocolVersionsLesserThanOrEqualTo(v ProtocolVersion) []ProtocolVersion {
	var versions []ProtocolVersion
	for _, candidate := range AllProtocolVersions() {
		if candidate <= v {
			versions = append(versions, candidate)
		}
	}
	return versions
}

func AllProtocolVersionsGreaterThanOrEqualTo(v ProtocolVersion) []ProtocolVersion {
	var versions []ProtocolVersion
	for _, candidate := range AllProtocolVersions() {
		if candidate >= v {
			versions = append(versions, candidate)
		}
	}
	return versions
}
