package pcomb

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

///////////////////////////////////////////////////////////////////////////////
// Value parsers
///////////////////////////////////////////////////////////////////////////////

// uuidLen is the length of the canonical xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx form.
const uuidLen = 36

var (
	// UUID matches a UUID in canonical form at the front of the input.
	UUID = Func[uuid.UUID](parseUUID)

	// JSONValue matches one complete JSON value (object, array, string,
	// number, true, false or null) starting at the first byte of the
	// input. The value is returned as a gjson.Result so callers can run
	// path queries against it.
	JSONValue = Func[gjson.Result](parseJSONValue)
)

func parseUUID(in Input) Result[uuid.UUID] {
	if in.Len() < uuidLen {
		return Failure[uuid.UUID](in)
	}

	id, err := uuid.Parse(in.String()[:uuidLen])
	if err != nil {
		return Failure[uuid.UUID](in)
	}
	return Success(in.advance(uuidLen), id)
}

func parseJSONValue(in Input) Result[gjson.Result] {
	rest := in.String()
	if rest == "" || isJSONSpace(rest[0]) {
		return Failure[gjson.Result](in)
	}

	// gjson does not report where a leading value ends, the decoder does.
	dec := json.NewDecoder(strings.NewReader(rest))
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return Failure[gjson.Result](in)
	}

	end := int(dec.InputOffset())
	return Success(in.advance(end), gjson.Parse(rest[:end]))
}

func isJSONSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
