package skyshot

// Overlaps reports whether two entities' boxes overlap.
// Touching edges do not count.
func Overlaps(a, b Entity) bool {
	return a.Bounds().Overlaps(b.Bounds())
}

// ProjectileHitsCharacter tests the projectile centre against the character
// box grown by the projectile radius. This over-reports hits near the corners
// compared with a true circle test.
func ProjectileHitsCharacter(p *Projectile, c *Character) bool {
	return c.Bounds().Inflate(p.Radius).ContainsStrict(p.Pos)
}
