package api

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dayFormat = "2006-01-02"

func parseID(c *gin.Context, param string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(param))
}

func parseDay(raw string) (time.Time, error) {
	day, err := time.ParseInLocation(dayFormat, raw, time.UTC)
	if err != nil {
		return time.Time{}, errors.New("invalid date, expected YYYY-MM-DD")
	}
	return day, nil
}

func parseDayRange(c *gin.Context) (time.Time, time.Time, error) {
	from, err := parseDay(c.Query("from"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid 'from' date, expected YYYY-MM-DD")
	}
	to, err := parseDay(c.Query("to"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid 'to' date, expected YYYY-MM-DD")
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, errors.New("'to' must not precede 'from'")
	}
	return from, to, nil
}
