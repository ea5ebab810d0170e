package utils

import (
	"fmt"
	"math/rand"
	"strings"
)

var digits = "0123456789"

var letters = []rune("abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789")

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

func GenerateRandomPassword(length int) string {
	randomPassword := make([]rune, length)
	for i := range randomPassword {
		randomPassword[i] = letters[rand.Intn(len(letters))]
	}
	return string(randomPassword)
}

// GenerateCompanyID builds ids like "KR_04821" from a two letter country code.
func GenerateCompanyID(countryCode string) string {
	var sb strings.Builder
	sb.WriteString(strings.ToUpper(countryCode))
	sb.WriteByte('_')
	for i := 0; i < 5; i++ {
		sb.WriteByte(digits[rand.Intn(len(digits))])
	}
	return sb.String()
}

var firstNames = []string{
	"Alex", "Jordan", "Taylor", "Morgan", "Casey", "Riley", "Jamie", "Avery",
	"Minjun", "Seoyeon", "Haruto", "Yuna", "Lukas", "Emma", "Mateo", "Sofia",
}

var lastNames = []string{
	"Kim", "Lee", "Park", "Smith", "Garcia", "Meyer", "Rossi", "Tanaka",
	"Nguyen", "Silva", "Novak", "Brown", "Choi", "Jung", "Schmidt", "Lopez",
}

func GenerateRandomFullName() string {
	return firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
}

// GenerateUsernameFromFullName derives a login e-mail such as
// "jordan.park42@example.com".
func GenerateUsernameFromFullName(fullName string, emailDomainName string) string {
	local := strings.ToLower(strings.Join(strings.Fields(fullName), "."))

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		local += string(digits[rand.Intn(len(digits))])
	}

	return local + "@" + emailDomainName
}
