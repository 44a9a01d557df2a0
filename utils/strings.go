package utils

import "strings"

func SentenceCase(fieldName string) string {
	return strings.ReplaceAll(strings.ToUpper(fieldName[:1])+strings.ToLower(fieldName[1:]), "Id ", "ID ")
}

func FirstLower(str string) string {
	return strings.ToLower(str[:1]) + str[1:]
}
