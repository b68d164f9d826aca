package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetQueryParamAsInt(c *gin.Context, paramName string, defaultValue int) (int, error) {
	// Get the query parameter value
	paramValue := c.Query(paramName)

	// If parameter is not provided or empty, return default value
	if paramValue == "" {
		return defaultValue, nil
	}

	// Try to convert to integer
	intValue, err := strconv.Atoi(paramValue)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", paramName)
	}

	// Validate that value is greater than 0
	if intValue <= 0 {
		return 0, fmt.Errorf("invalid %s", paramName)
	}

	return intValue, nil
}
