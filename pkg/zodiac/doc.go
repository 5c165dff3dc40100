// Package zodiac provides cyclic ordinal arithmetic over the twelve sidereal
// signs and the lookup tables for sign and nakshatra names.
//
// Signs are small integers so that house arithmetic stays readable:
//
//	zodiac.SignAt(13)              // Aries
//	zodiac.Capricorn.Add(3)        // Aries
//	s, err := zodiac.Parse("makara") // Capricorn
//
// Everything in this package is pure and safe for concurrent use.
package zodiac
