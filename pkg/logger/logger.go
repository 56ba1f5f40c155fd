package logger

// Logger - общий интерфейс логгера приложения, реализации лежат в подпакетах
// (сейчас только zap_adapter). Держим свой интерфейс чтобы не протаскивать
// zap по всем слоям.
type Logger interface {
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

type Field struct {
	Key   string
	Value interface{}
}

func NewField(key string, value interface{}) Field {
	return Field{
		Key:   key,
		Value: value,
	}
}
