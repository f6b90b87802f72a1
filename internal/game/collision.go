package game

import "slices"

// resolveBulletHits removes every bullet that overlaps an asteroid together
// with the first asteroid it hits. Both slices are scanned from the back so
// removals do not shift the elements still to be visited.
func resolveBulletHits(s *State) int {
	destroyed := 0
	for i := len(s.Bullets) - 1; i >= 0; i-- {
		b := s.Bullets[i]
		for j := len(s.Asteroids) - 1; j >= 0; j-- {
			if !b.CollidesWith(s.Asteroids[j]) {
				continue
			}
			s.Asteroids = slices.Delete(s.Asteroids, j, j+1)
			s.Bullets = slices.Delete(s.Bullets, i, i+1)
			s.Score += s.Tuning.ScorePerAsteroid
			destroyed++
			break
		}
	}
	return destroyed
}

// resolveShipHit costs a life for at most one asteroid touching the ship per frame.
func resolveShipHit(s *State) bool {
	for j := len(s.Asteroids) - 1; j >= 0; j-- {
		if s.Ship.CollidesWith(s.Asteroids[j]) {
			s.Asteroids = slices.Delete(s.Asteroids, j, j+1)
			s.Lives--
			return true
		}
	}
	return false
}
