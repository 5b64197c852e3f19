package model

import "fmt"

type CommissionType string

const (
	Congressional CommissionType = "congressional"
	Legislative   CommissionType = "legislative"
)

func ParseCommissionType(s string) (CommissionType, error) {
	switch CommissionType(s) {
	case Congressional, Legislative:
		return CommissionType(s), nil
	default:
		return "", fmt.Errorf("未対応の委員会種別です: %s", s)
	}
}

func (c CommissionType) String() string {
	return string(c)
}
