package player

import "fmt"

// Player is one participant who submits daily puzzle results.
type Player struct {
	ID        string
	FullName  string
	Email     string
	AvatarURL string
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.FullName == "" {
		return fmt.Errorf("player full name is required")
	}

	return nil
}
