package component

type DinoTag struct{}

var DinoTagComponent = NewComponent[DinoTag]()

type GroundTag struct{}

var GroundTagComponent = NewComponent[GroundTag]()

type PterodactylTag struct{}

var PterodactylTagComponent = NewComponent[PterodactylTag]()
