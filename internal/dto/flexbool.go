package dto

import "fmt"

// FlexBool is the single place where the API's loose boolean encoding is
// coerced: submissions may carry a JSON boolean or the strings
// "true"/"false" (the validation guards admit both), and every create or
// update DTO declares its boolean fields as *FlexBool so the coercion
// never has to be repeated per field.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "true", `"true"`:
		*b = true
	case "false", `"false"`, "null":
		*b = false
	default:
		return fmt.Errorf("valor booleano invalido: %s", data)
	}
	return nil
}

func (b FlexBool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("true"), nil
	}
	return []byte("false"), nil
}

// Bool reports the coerced value, treating an omitted field as false.
func (b *FlexBool) Bool() bool {
	return b != nil && bool(*b)
}
