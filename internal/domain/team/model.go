package team

import "fmt"

// Team is a real-world football club that players belong to.
type Team struct {
	ID    string
	Name  string
	Short string
	Crest string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
