package handlers

import "productos/internal/validation"

// Validation messages returned to API clients.
const (
	MsgInvalidID        = "Id no válido"
	MsgNameRequired     = "Favor de proporcionar el nombre del producto"
	MsgPriceInvalid     = "Se esperaba un valor numérico mayor a 0"
	MsgPriceRequired    = "Favor de proporcionar el precio del producto"
	MsgAvailableInvalid = "Se espera un valor booleano"
)

func idRule() *validation.Field {
	return validation.Param("id").IsInt().WithMessage(MsgInvalidID)
}

func nameRule() *validation.Field {
	return validation.BodyField("name").NotEmpty().WithMessage(MsgNameRequired)
}

// priceRule reports a non-numeric price once, through the positivity check;
// the emptiness check only fails for a missing or empty price.
func priceRule() *validation.Field {
	return validation.BodyField("price").
		Custom(validation.GreaterThanZero).WithMessage(MsgPriceInvalid).
		NotEmpty().WithMessage(MsgPriceRequired)
}

func availableRule() *validation.Field {
	return validation.BodyField("available").IsBoolean().WithMessage(MsgAvailableInvalid)
}

var (
	idRules     = validation.Chain{idRule()}
	createRules = validation.Chain{nameRule(), priceRule()}
	updateRules = validation.Chain{idRule(), nameRule(), priceRule(), availableRule()}
)

// productInput is the normalized body handed from the input gate to a handler.
type productInput struct {
	Name      string
	Price     float64
	Available bool
}

func newProductInput(body map[string]any) productInput {
	price, _ := validation.ToNumber(body["price"])
	return productInput{
		Name:      validation.Stringify(body["name"]),
		Price:     price,
		Available: validation.ToBool(body["available"]),
	}
}
