package appinfo

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"

	"emucfg/tree"
)

// ErrNotSuccessful is returned when the store reports success=false.
var ErrNotSuccessful = errors.New("app details request was not successful")

// ParseAppDetails unwraps a store app-details response,
// {"<appid>": {"success": true, "data": {...}}}, and returns the data tree.
func ParseAppDetails(body []byte, appid uint32) (*tree.Node, error) {
	if appid == 0 {
		return nil, errors.New("invalid appid 0")
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("app details for %d: %w", appid, tree.ErrInvalidJSON)
	}

	envelope := gjson.GetBytes(body, strconv.FormatUint(uint64(appid), 10))
	if !envelope.Get("success").Bool() {
		return nil, fmt.Errorf("appid %d: %w", appid, ErrNotSuccessful)
	}

	data := envelope.Get("data")
	if !data.IsObject() {
		return tree.FromObject(tree.NewObject()), nil
	}

	details, err := tree.FromJSON([]byte(data.Raw))
	if err != nil {
		return nil, fmt.Errorf("app details for %d: %w", appid, err)
	}

	return details, nil
}
