package teststats

// TaskScore is one task's score inside a topic roll-up.
type TaskScore struct {
	TaskID   string  `json:"task_id"`
	Question string  `json:"question"`
	Score    float64 `json:"score"`
}

// TopicResult rolls one topic's task scores up for the per-session result
// view. MaximumScore is the task count, one point per task.
type TopicResult struct {
	TopicID      string      `json:"topic_id"`
	Name         string      `json:"name"`
	TaskResults  []TaskScore `json:"task_results"`
	Score        float64     `json:"score"`
	MaximumScore float64     `json:"maximum_score"`
}

// NewTopicResult sums the given task scores. An empty topic reports 0/0 and
// a zero percentage rather than dividing by zero.
func NewTopicResult(topicID, name string, taskResults []TaskScore) TopicResult {
	var sum float64
	for _, tr := range taskResults {
		sum += tr.Score
	}
	return TopicResult{
		TopicID:      topicID,
		Name:         name,
		TaskResults:  taskResults,
		Score:        sum,
		MaximumScore: float64(len(taskResults)),
	}
}

// ScorePercentage is the topic score as a fraction of its maximum, 0 when
// the topic holds no tasks.
func (t TopicResult) ScorePercentage() float64 {
	if t.MaximumScore == 0 {
		return 0
	}
	return t.Score / t.MaximumScore
}
