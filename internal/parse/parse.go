// Package parse reads a constraints file into structures.Constraint values
// and an optional pillar seed, following the line formats accepted by the
// constraint parsers registered in this package.
package parse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"seedforge.dev/internal/structures"
)

// LineError reports a skipped line: one that none of the registered
// constraint parsers claimed, one whose claiming parser rejected a field,
// or a single token that is not a valid pillar seed. Callers are expected
// to warn and skip, not abort.
type LineError struct {
	LineNo int
	Text   string
	Reason string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %s", e.LineNo, e.Text, e.Reason)
}

// Result holds everything a constraints file yields: zero or more
// constraints, an optional pillar seed, and any malformed lines that were
// skipped along the way.
type Result struct {
	Constraints []structures.Constraint
	PillarSeed  uint32
	HasPillar   bool
	Skipped     []*LineError
}

// lineParser claims a comma-split set of fields and produces a constraint,
// or reports that it doesn't recognize this shape.
type lineParser func(fields []string) (structures.Constraint, bool, error)

// registry lists the per-kind parsers in the order they're tried, matching
// the dispatch-by-first-claim behavior described for this format.
var registry = []lineParser{
	parseShipwreck,
	parsePortal,
	parseVillage,
}

// Read parses every line of r. A line that only the pillar-seed shape
// matches sets Result.PillarSeed; every comma-separated line is tried
// against each registered constraint parser in order, and the first to
// claim it wins. A line none of them claim (and that looks like neither
// a comment nor a bare integer) is recorded in Result.Skipped rather than
// aborting the read.
func Read(r io.Reader) (*Result, error) {
	res := &Result{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !strings.Contains(line, ",") {
			if v, err := strconv.ParseUint(line, 10, 32); err == nil {
				res.PillarSeed = uint32(v)
				res.HasPillar = true
				continue
			}
			res.Skipped = append(res.Skipped, &LineError{lineNo, line, "single token is not a valid unsigned 32-bit pillar seed"})
			continue
		}

		fields := splitTrim(line)
		claimed := false
		var lastErr error
		for _, p := range registry {
			c, ok, err := p(fields)
			if !ok {
				continue
			}
			claimed = true
			if err != nil {
				lastErr = err
				break
			}
			res.Constraints = append(res.Constraints, c)
			break
		}
		if !claimed {
			res.Skipped = append(res.Skipped, &LineError{lineNo, line, fmt.Sprintf("no parser claims %d fields", len(fields))})
		} else if lastErr != nil {
			res.Skipped = append(res.Skipped, &LineError{lineNo, line, lastErr.Error()})
		}
	}
	if err := scanner.Err(); err != nil {
		return res, err
	}
	return res, nil
}

func splitTrim(line string) []string {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseCommon(fields []string) (chunkX, chunkZ int32, rot structures.Rotation, err error) {
	x, err := strconv.ParseInt(fields[0], 10, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("chunk_x: %w", err)
	}
	z, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("chunk_z: %w", err)
	}
	rot, ok := parseRotation(fields[2])
	if !ok {
		return 0, 0, 0, fmt.Errorf("unrecognized rotation %q", fields[2])
	}
	return int32(x), int32(z), rot, nil
}

func parseRotation(s string) (structures.Rotation, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NONE":
		return structures.RotationNone, true
	case "CLOCKWISE_90":
		return structures.RotationClockwise90, true
	case "CLOCKWISE_180":
		return structures.RotationClockwise180, true
	case "COUNTERCLOCKWISE_90":
		return structures.RotationCounterclockwise90, true
	default:
		return 0, false
	}
}

func parseYesNo(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return true, true
	case "no":
		return false, true
	default:
		return false, false
	}
}

// parseShipwreck claims 5-field lines whose last field is Ocean or Beached:
// cx, cz, rot, type_name, Ocean|Beached. Village lines are also 5 fields
// but end in a numeric biome id, so that last field is what disambiguates
// ownership rather than field count alone.
func parseShipwreck(fields []string) (structures.Constraint, bool, error) {
	if len(fields) != 5 {
		return structures.Constraint{}, false, nil
	}
	var beached bool
	switch strings.ToLower(fields[4]) {
	case "ocean":
		beached = false
	case "beached":
		beached = true
	default:
		return structures.Constraint{}, false, nil
	}
	cx, cz, rot, err := parseCommon(fields)
	if err != nil {
		return structures.Constraint{}, true, err
	}
	return structures.Constraint{
		Kind: structures.KindShipwreck, ChunkX: cx, ChunkZ: cz, Rotation: rot,
		ShipwreckType: strings.ToLower(fields[3]), IsBeached: beached,
	}, true, nil
}

// parsePortal claims 6-field lines: cx, cz, rot, portal_name, yes|no mirror,
// category(1|2|3).
func parsePortal(fields []string) (structures.Constraint, bool, error) {
	if len(fields) != 6 {
		return structures.Constraint{}, false, nil
	}
	// A 6-field village line also exists (biome_id plus abandoned flag);
	// its fifth field is a yes/no flag while village's is numeric, so
	// that's what decides ownership here.
	mirrored, ok := parseYesNo(fields[4])
	if !ok {
		return structures.Constraint{}, false, nil
	}
	cx, cz, rot, err := parseCommon(fields)
	if err != nil {
		return structures.Constraint{}, true, err
	}
	mirror := structures.MirrorNone
	if mirrored {
		mirror = structures.MirrorFrontBack
	}
	cat, err := strconv.ParseInt(fields[5], 10, 32)
	if err != nil || cat < 1 || cat > 3 {
		return structures.Constraint{}, true, fmt.Errorf("biome category must be 1, 2, or 3, got %q", fields[5])
	}
	return structures.Constraint{
		Kind: structures.KindRuinedPortal, ChunkX: cx, ChunkZ: cz, Rotation: rot,
		PortalType: strings.ToLower(fields[3]), Mirror: mirror,
		BiomeCategory: structures.BiomeCategory(cat),
	}, true, nil
}

// parseVillage claims 5- or 6-field lines: cx, cz, rot, piece_name,
// biome_id(1..5), [yes|no abandoned]. Abandoned defaults to no.
func parseVillage(fields []string) (structures.Constraint, bool, error) {
	if len(fields) != 5 && len(fields) != 6 {
		return structures.Constraint{}, false, nil
	}
	cx, cz, rot, err := parseCommon(fields)
	if err != nil {
		return structures.Constraint{}, true, err
	}
	biome, err := strconv.ParseInt(fields[4], 10, 32)
	if err != nil || biome < 1 || biome > 5 {
		return structures.Constraint{}, true, fmt.Errorf("village biome_id must be 1..5, got %q", fields[4])
	}
	abandoned := false
	if len(fields) == 6 {
		var ok bool
		abandoned, ok = parseYesNo(fields[5])
		if !ok {
			return structures.Constraint{}, true, fmt.Errorf("unrecognized abandoned flag %q", fields[5])
		}
	}
	return structures.Constraint{
		Kind: structures.KindVillage, ChunkX: cx, ChunkZ: cz, Rotation: rot,
		StartPiece: strings.ToLower(fields[3]), VillageType: structures.VillageType(biome),
		IsAbandoned: abandoned,
	}, true, nil
}
