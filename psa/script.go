// Package psa decodes PSA action script tables into typed scripts.
//
// A script is a run of fixed size 8 byte events inside a larger blob;
// each event references its argument records by absolute offset into the
// same blob. Scripts are located through an action table of entry
// offsets, plus fragment discovery for scripts only reachable through
// goto and subroutine events.
package psa

import (
	"github.com/rs/zerolog/log"

	"github.com/GamendeMier/brawllib/internal/utils"
)

// Events are like lines of code in a script.
const eventSize = 0x8

// Event identifiers PSA inserts as annotations. Their argument payloads
// are meaningless, so events carrying one of these are dropped.
const (
	psaAnnotation1 = 0xFADEF00D
	psaAnnotation2 = 0xFADE0D8A
)

// Script is one decoded action script and the blob offset it was decoded
// from.
type Script struct {
	Events []Event
	Offset uint32
}

// Event is one instruction of a script.
type Event struct {
	Namespace uint8
	Code      uint8
	Unk1      uint8
	Arguments []Argument
}

// RawID recomposes the 32-bit event identifier from the namespace, code
// and argument count. It panics if the event carries 0x100 or more
// arguments; decoded events never do, as the count is stored in a single
// byte.
func (e Event) RawID() uint32 {
	numArgs := len(e.Arguments)
	if numArgs >= 0x100 {
		panic("psa: event has too many arguments to recompose its id")
	}
	return uint32(e.Namespace)<<24 | uint32(e.Code)<<16 | uint32(numArgs)<<8
}

// Scripts decodes num scripts from the parent blob. The entry offset of
// script i is read as a big-endian i32 at offsetData[i*4..].
func Scripts(parentData []byte, offsetData []byte, num int) []Script {
	var result []Script
	for i := 0; i < num; i++ {
		offset, err := utils.ReadI32BE(offsetData, i*4)
		if err != nil {
			log.Error().Err(err).Int("script", i).Msg("action table entry out of range")
			return result
		}
		result = append(result, NewScript(parentData, int(offset)))
	}
	return result
}

// NewScript decodes the script starting at offset in the parent blob.
// An offset of zero or past the end of the blob yields an empty script.
func NewScript(parentData []byte, offset int) Script {
	var events []Event
	if offset > 0 && offset < len(parentData) {
		eventOffset := offset
		for {
			rawID, err := utils.ReadU32BE(parentData, eventOffset)
			if err != nil {
				log.Error().Err(err).Msg("event stream ran past the end of the blob without terminating")
				break
			}
			namespace := parentData[eventOffset]
			code := parentData[eventOffset+1]
			numArguments := parentData[eventOffset+2]
			unk1 := parentData[eventOffset+3]

			if code == 0 && namespace == 0 {
				break
			}

			if rawID != psaAnnotation1 && rawID != psaAnnotation2 {
				argumentOffset, err := utils.ReadU32BE(parentData, eventOffset+4)
				if err != nil {
					log.Error().Err(err).Msg("event record ran past the end of the blob")
					break
				}
				// TODO: this only occurs for fragments triggered by
				// subroutines; track down which subroutines point at
				// weird data. It looks like the data is off by 4 bytes,
				// giving argument offsets of 0xFADEF00D, 0x0b000200,
				// 0x60a0800 which are valid events.
				if int64(argumentOffset) >= int64(len(parentData)) {
					log.Debug().
						Uint32("raw_id", rawID).
						Uint32("argument_offset", argumentOffset).
						Msg("argument offset out of range")
					break
				}
				events = append(events, Event{
					Namespace: namespace,
					Code:      code,
					Unk1:      unk1,
					Arguments: arguments(parentData, int(argumentOffset), int(numArguments)),
				})
			}

			eventOffset += eventSize
		}
	}
	return Script{Events: events, Offset: uint32(offset)}
}
