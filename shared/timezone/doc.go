// Package timezone holds the time zone core of the converter.
//
// Usage Examples:
//
//  1. Parsing a UTC timestamp:
//     instant, err := timezone.Parse("2025-04-01T15:30:00Z")
//
//  2. Resolving an abbreviation to a canonical zone:
//     zone := timezone.Resolve("ist") // "Asia/Kolkata"
//
//  3. Formatting an instant in a zone:
//     text, err := timezone.Format(instant, zone) // "2025-04-01 21:00:00 IST"
//
//  4. Iterating the default zone set:
//     for _, z := range timezone.DefaultZones() { ... }
//
// Only the UTC designator "Z" is accepted on input; numeric offsets such as
// "+05:30" are rejected with a NotUTCSuffix failure even when otherwise valid.
//
// Abbreviations are ambiguous in the real world. The alias table picks one
// zone per abbreviation: CST and CDT always mean US Central, IST always means
// India. Any name the host zone database accepts passes through unchanged.
package timezone
