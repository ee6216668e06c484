package store

// Navigate 切换当前页面
func (s *Store) Navigate(screen Screen) State {
	next, _ := s.update(CollectionNavigation, "navigate", func(cur State) (State, string, error) {
		cur.Navigation.CurrentScreen = screen
		return cur, string(screen), nil
	})
	return next
}

// SelectTenant 选中租客，并不校验租客存在；详情页读取时再处理不存在的情况
func (s *Store) SelectTenant(id string) State {
	next, _ := s.update(CollectionNavigation, "select", func(cur State) (State, string, error) {
		cur.Navigation.SelectedTenantID = id
		return cur, id, nil
	})
	return next
}

// NavigateTo 切换页面，tenantID 非空时同时选中租客，只产生一次变更
func (s *Store) NavigateTo(screen Screen, tenantID string) State {
	next, _ := s.update(CollectionNavigation, "navigate", func(cur State) (State, string, error) {
		cur.Navigation.CurrentScreen = screen
		if tenantID != "" {
			cur.Navigation.SelectedTenantID = tenantID
		}
		return cur, string(screen), nil
	})
	return next
}

// OpenTenant 选中租客并进入详情页
func (s *Store) OpenTenant(id string) State {
	next, _ := s.update(CollectionNavigation, "open", func(cur State) (State, string, error) {
		cur.Navigation.SelectedTenantID = id
		cur.Navigation.CurrentScreen = ScreenTenantDetails
		return cur, id, nil
	})
	return next
}

// SetAuthenticated 只修改登录标记
func (s *Store) SetAuthenticated(ok bool) State {
	next, _ := s.update(CollectionNavigation, "auth", func(cur State) (State, string, error) {
		cur.Navigation.IsAuthenticated = ok
		return cur, "", nil
	})
	return next
}

// Login 标记已登录并进入仪表盘
func (s *Store) Login() State {
	next, _ := s.update(CollectionNavigation, "login", func(cur State) (State, string, error) {
		cur.Navigation.IsAuthenticated = true
		cur.Navigation.CurrentScreen = ScreenDashboard
		return cur, "", nil
	})
	return next
}

// Logout 清除登录标记并回到登录页
func (s *Store) Logout() State {
	next, _ := s.update(CollectionNavigation, "logout", func(cur State) (State, string, error) {
		cur.Navigation.IsAuthenticated = false
		cur.Navigation.CurrentScreen = ScreenLogin
		return cur, "", nil
	})
	return next
}
