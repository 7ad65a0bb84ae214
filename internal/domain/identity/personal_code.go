// Package identity validates Estonian personal identification codes and the
// age eligibility derived from them.
package identity

import (
	"fmt"
	"time"
)

const personalCodeLength = 11

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// PersonalCode is the decoded form of an 11 digit code: GYYMMDDSSSC.
type PersonalCode struct {
	Code      string
	BirthDate time.Time
	Gender    Gender
}

var (
	firstWeights  = [10]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 1}
	secondWeights = [10]int{3, 4, 5, 6, 7, 8, 9, 1, 2, 3}
)

// ParsePersonalCode checks the structure, birth date and checksum of code.
func ParsePersonalCode(code string) (PersonalCode, error) {
	if len(code) != personalCodeLength {
		return PersonalCode{}, fmt.Errorf("personal code must have %d digits, got %d", personalCodeLength, len(code))
	}

	digits := make([]int, personalCodeLength)
	for i := 0; i < personalCodeLength; i++ {
		c := code[i]
		if c < '0' || c > '9' {
			return PersonalCode{}, fmt.Errorf("personal code contains non-digit character at position %d", i+1)
		}
		digits[i] = int(c - '0')
	}

	century, gender, err := decodeGenderDigit(digits[0])
	if err != nil {
		return PersonalCode{}, err
	}

	year := century + digits[1]*10 + digits[2]
	month := digits[3]*10 + digits[4]
	day := digits[5]*10 + digits[6]
	birthDate := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if birthDate.Year() != year || int(birthDate.Month()) != month || birthDate.Day() != day {
		return PersonalCode{}, fmt.Errorf("personal code contains invalid birth date %04d-%02d-%02d", year, month, day)
	}

	if want := checksum(digits); digits[10] != want {
		return PersonalCode{}, fmt.Errorf("personal code checksum mismatch: expected %d, got %d", want, digits[10])
	}

	return PersonalCode{
		Code:      code,
		BirthDate: birthDate,
		Gender:    gender,
	}, nil
}

// Age returns the completed years of life on the date of now.
func (p PersonalCode) Age(now time.Time) int {
	age := now.Year() - p.BirthDate.Year()
	if now.Month() < p.BirthDate.Month() ||
		(now.Month() == p.BirthDate.Month() && now.Day() < p.BirthDate.Day()) {
		age--
	}
	return age
}

func decodeGenderDigit(d int) (int, Gender, error) {
	switch d {
	case 1, 2:
		return 1800, genderOf(d), nil
	case 3, 4:
		return 1900, genderOf(d), nil
	case 5, 6:
		return 2000, genderOf(d), nil
	default:
		return 0, "", fmt.Errorf("personal code has invalid gender and century digit %d", d)
	}
}

func genderOf(d int) Gender {
	if d%2 == 1 {
		return GenderMale
	}
	return GenderFemale
}

func checksum(digits []int) int {
	sum := 0
	for i, w := range firstWeights {
		sum += digits[i] * w
	}
	if rem := sum % 11; rem != 10 {
		return rem
	}

	sum = 0
	for i, w := range secondWeights {
		sum += digits[i] * w
	}
	if rem := sum % 11; rem != 10 {
		return rem
	}
	return 0
}
