package response

type TagList struct {
	Tags []string `json:"tags"`
}

func NewTagList(names []string) TagList {
	if names == nil {
		names = []string{}
	}
	return TagList{Tags: names}
}
