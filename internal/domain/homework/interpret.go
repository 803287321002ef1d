package homework

import "fmt"

var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the human readable text for a known status.
func Verdict(status Status) (string, bool) {
	text, ok := verdicts[status]
	return text, ok
}

// Interpret turns a work item into the chat message announcing its status.
func Interpret(item WorkItem) (string, error) {
	if item.Name == "" {
		return "", &MissingKeyError{Key: KeyHomeworkName}
	}
	verdict, ok := Verdict(item.Status)
	if !ok {
		return "", &StatusError{Name: item.Name, Status: string(item.Status)}
	}
	return fmt.Sprintf(`Изменился статус проверки работы "%s". %s`, item.Name, verdict), nil
}
