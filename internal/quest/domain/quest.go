package domain

type Quest struct {
	ID          int
	Name        string
	Title       string
	Description string
	XPReward    int
	Steps       []QuestStep
}

type QuestStep struct {
	ID    int
	Title string
}

func (q Quest) HasStep(stepID int) bool {
	for _, s := range q.Steps {
		if s.ID == stepID {
			return true
		}
	}
	return false
}
