package translate

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// _ru holds the Russian catalog, keyed by the en-US format.
var _ru = map[string]string{
	// cpu
	"decode":                          "ошибка декодирования",
	"signal invalid":                  "недопустимый сигнал",
	"mux invalid":                     "недопустимый выбор мультиплексора",
	"operand index invalid":           "недопустимый индекс операнда",
	"control unit stopped":            "устройство управления остановлено",
	"alu operation invalid":           "недопустимая операция АЛУ",
	"register invalid":                "недопустимый регистр",
	"register is immutable":           "регистр неизменяем",
	"address invalid":                 "недопустимый адрес",
	"write to read-only cell":         "запись в ячейку только для чтения",
	"read from write-only cell":       "чтение из ячейки только для записи",
	"instruction invalid":             "недопустимая инструкция",
	"data invalid":                    "недопустимые данные",
	"opcode %v flag %d not decodable": "код операции %v с флагом %d не декодируется",
	"register r%d does not exist":     "регистр r%d не существует",
	"%v address %d out of range":      "%v: адрес %d вне диапазона",
	"mpc %d %v: %v":                   "mpc %d %v: %v",
	"line %d %v":                      "строка %d %v",
	"line %d '%v' %v":                 "строка %d '%v' %v",
	"'%v' is not a number":            "'%v' не число",
	"'%v' is not a register":          "'%v' не регистр",
	"'%v' is not a binary integer":    "'%v' не двоичное целое",

	"'%v' is not a 32-bit binary instruction": "'%v' не 32-битная двоичная инструкция",

	// io
	"channel full": "канал заполнен",
	"empty buffer": "буфер пуст",

	// config
	"word_bits out of range":          "word_bits вне диапазона",
	"tick_limit must not be negative": "tick_limit не может быть отрицательным",
	"data_size too small":             "data_size слишком мал",
	"%v: expected %v":                 "%v: ожидается %v",

	// emulator
	"pc %d mpc %d tick %d: %v": "pc %d mpc %d такт %d: %v",
}

func init() {
	for key, msg := range _ru {
		message.SetString(language.Russian, key, msg)
	}
}
