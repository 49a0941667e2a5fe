package queries

var userQuery = gql(`query User($id: ID!) {
  user(id: $id) {
    profilePicture(formt: PNG)
  }
}`)

var storyQuery = gql("mutation { likeStory(storyId: 1) { id } }")

var dynamic = gql(userQueryText)
