package physics

// IntegrateEulerSymplectic advances every body by dt. Bodies only feel the
// central mass, so the order of the slice does not change the result.
func IntegrateEulerSymplectic(bodies []*Body, dt float64) {
	for _, b := range bodies {
		b.Update(dt)
	}
}
