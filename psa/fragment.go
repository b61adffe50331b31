package psa

// FragmentScripts finds scripts that are pointed to by gotos and
// subroutines but are not entries in any action table, and decodes them
// from the parent blob.
//
// Discovery is a single pass over the given scripts: gotos inside the
// discovered fragments themselves are not followed. Callers wanting the
// full closure feed the result back in and iterate.
func FragmentScripts(parentData []byte, actionScripts [][]Script) []Script {
	var fragments []Script
	for _, scripts := range actionScripts {
		for _, script := range scripts {
			for _, event := range script.Events {
				// Subroutine and goto events.
				if event.Namespace != 0 || (event.Code != 7 && event.Code != 9) {
					continue
				}
				if len(event.Arguments) == 0 {
					continue
				}
				offset, ok := event.Arguments[0].(Offset)
				if !ok || offset <= 0 {
					continue
				}

				isAction := false
			outer:
				for _, checkScripts := range actionScripts {
					for _, checkScript := range checkScripts {
						if checkScript.Offset == uint32(offset) {
							isAction = true
							break outer
						}
					}
				}

				alreadyAdded := false
				for _, fragment := range fragments {
					if fragment.Offset == uint32(offset) {
						alreadyAdded = true
						break
					}
				}

				if !isAction && !alreadyAdded {
					fragments = append(fragments, NewScript(parentData, int(offset)))
				}
			}
		}
	}
	return fragments
}
