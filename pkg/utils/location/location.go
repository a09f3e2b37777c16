// pkg/utils/location/location.go
package location

import (
	_ "embed"
	"encoding/json"
	"strings"
	"sync"
)

// State is a Brazilian federative unit.
type State struct {
	Code   string `json:"code"` // UF: SP, RJ gibi
	Name   string `json:"name"`
	Region string `json:"region"`
}

//go:embed states.json
var statesJSON []byte

var (
	states    []State
	loadOnce  sync.Once
	loadError error
)

// Init JSON verisini bir kez yükler
func Init() error {
	loadOnce.Do(func() {
		loadError = json.Unmarshal(statesJSON, &states)
	})
	return loadError
}

// GetStates tüm UF listesini döner
func GetStates() []State {
	if err := Init(); err != nil {
		return nil
	}
	return states
}

// GetStatesByRegion belirli bir bölgenin eyaletlerini döner
func GetStatesByRegion(region string) []State {
	var regionStates []State
	for _, state := range GetStates() {
		if strings.EqualFold(state.Region, region) {
			regionStates = append(regionStates, state)
		}
	}
	return regionStates
}

func GetState(code string) (State, bool) {
	for _, state := range GetStates() {
		if state.Code == strings.ToUpper(strings.TrimSpace(code)) {
			return state, true
		}
	}
	return State{}, false
}

func IsValidState(code string) bool {
	_, ok := GetState(code)
	return ok
}
