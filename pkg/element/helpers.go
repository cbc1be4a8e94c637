package element

// If returns the node if condition is true, nil otherwise. Builders and
// renderers skip nil, so this enables conditional children:
//
//	NewContainer("nav").WithChild(If(loggedIn, logoutLink))
func If(condition bool, el Element) Element {
	if condition {
		return el
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse Element) Element {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// Range maps a slice to elements, dropping nils.
func Range[T any](items []T, fn func(item T, index int) Element) []Element {
	result := make([]Element, 0, len(items))
	for i, item := range items {
		if el := fn(item, i); el != nil {
			result = append(result, el)
		}
	}
	return result
}
