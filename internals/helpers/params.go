package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ParamID reads an integer path parameter. Non-integers fail validation;
// negative values are passed through as 0 so lookups simply miss.
func ParamID(c *fiber.Ctx, name, field string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, NewFieldError(field, "int")
	}
	if n < 0 {
		return 0, nil
	}
	return uint(n), nil
}
