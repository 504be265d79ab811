// Package jsonutil collects JSON decoding helpers used around request
// attributes, stored settings and config values where a string may or may not
// hold JSON.
//
//	var settings Settings
//	if err := jsonutil.Decode(raw, &settings, jsonutil.Strict()); err != nil {
//	    // errors.Is(err, jsonutil.ErrInvalidJSON)
//	}
//
//	v := jsonutil.DecodeIfJSON(`{"a":1}`) // map[string]any{"a": json.Number("1")}
//	v = jsonutil.DecodeIfJSON("plain")    // "plain"
//
// Numbers decoded into interface values are kept as json.Number so large IDs
// survive a round trip.
package jsonutil
